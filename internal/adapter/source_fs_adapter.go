// Package adapter contains the filesystem and persistence adapters for the namecheck CLI.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// ErrNotText is returned for files that are neither UTF-8 nor BOM-marked UTF-16.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get discovers the source files under the provided roots.
	Get(roots []m.Path, filter *FileFilter) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadSource loads and decodes a file and splits it into lines.
	ReadSource(path m.Path) (m.SourceFile, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects matching source files for the provided roots. Directory roots
// are walked recursively, with or without a trailing "/...", and a file path
// is taken as is when it passes the filter. Paths keep the form the root was
// given in and are deduplicated across roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, filter *FileFilter) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	if filter == nil {
		var err error
		if filter, err = NewFileFilter(nil, nil, nil); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, exists := seen[abs]; exists {
			return nil
		}

		seen[abs] = struct{}{}
		paths = append(paths, m.Path(path))

		return nil
	}

	for _, root := range roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if filter.MatchFile(rootPath) {
				if err := add(rootPath); err != nil {
					return nil, err
				}
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != rootPath && filter.SkipDir(path) {
					return filepath.SkipDir
				}

				return nil
			}

			if !filter.MatchFile(path) {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadSource reads a file as text. UTF-8 (with or without BOM) and UTF-16
// with a BOM are accepted; line endings may be LF or CRLF.
func (a *LocalSourceFSAdapter) ReadSource(path m.Path) (m.SourceFile, error) {
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return m.SourceFile{}, err
	}

	text, err := decodeText(raw)
	if err != nil {
		return m.SourceFile{}, err
	}

	return m.SourceFile{Path: path, Lines: splitLines(text)}, nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func decodeText(raw []byte) (string, error) {
	if !hasUTF16BOM(raw) && !utf8.Valid(raw) {
		return "", ErrNotText
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	return string(decoded), nil
}

func hasUTF16BOM(raw []byte) bool {
	return len(raw) >= 2 && ((raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF))
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func normalizeRootPath(root string) (string, error) {
	rootStr := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Clean(rootStr), nil
}

// parseRootPath strips the Go-style "/..." suffix. Directories are always
// walked recursively, so "Source" and "Source/..." name the same tree.
func parseRootPath(rootStr string) string {
	if rootStr == "..." {
		return "."
	}

	return strings.TrimSuffix(rootStr, "/...")
}
