package adapter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// FileFilter decides which files and directories discovery visits.
// Exclude globs are matched against base names.
type FileFilter struct {
	extensions   map[string]struct{}
	excludeDirs  []glob.Glob
	excludeFiles []glob.Glob
}

// NewFileFilter compiles a filter. An empty extension list selects
// model.DefaultExtensions.
func NewFileFilter(extensions, excludeDirs, excludeFiles []string) (*FileFilter, error) {
	if len(extensions) == 0 {
		extensions = m.DefaultExtensions
	}

	f := &FileFilter{extensions: make(map[string]struct{}, len(extensions))}

	for _, ext := range extensions {
		f.extensions[strings.ToLower(ext)] = struct{}{}
	}

	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}

		f.excludeDirs = append(f.excludeDirs, g)
	}

	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}

		f.excludeFiles = append(f.excludeFiles, g)
	}

	return f, nil
}

// MatchFile reports whether path has a scanned extension and is not excluded.
func (f *FileFilter) MatchFile(path string) bool {
	if _, ok := f.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
		return false
	}

	base := filepath.Base(path)
	for _, g := range f.excludeFiles {
		if g.Match(base) {
			return false
		}
	}

	return true
}

// SkipDir reports whether a directory should not be descended into.
func (f *FileFilter) SkipDir(path string) bool {
	base := filepath.Base(path)
	for _, g := range f.excludeDirs {
		if g.Match(base) {
			return true
		}
	}

	return false
}
