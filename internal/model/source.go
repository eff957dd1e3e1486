// Package model defines the data structures shared by the naming checker.
package model

// Path represents a file system path.
type Path string

// DefaultExtensions lists the file extensions scanned when none are configured.
var DefaultExtensions = []string{".cpp", ".h", ".hpp", ".cc", ".cxx", ".hh", ".inl"}

// File identifies a scanned file on disk.
type File struct {
	Path Path   `yaml:"path"`
	Hash string `yaml:"hash,omitempty"`
}

// SourceFile is the decoded content of one source file, split into lines.
// Lines carry no trailing newline characters.
type SourceFile struct {
	Path  Path
	Lines []string
}
