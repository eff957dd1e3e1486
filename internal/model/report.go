package model

import "time"

// FileRecord describes one file visited during a run.
type FileRecord struct {
	File       File   `yaml:"file"`
	Violations int    `yaml:"violations"`
	Skipped    bool   `yaml:"skipped,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

// Report is the persisted outcome of a single check run.
type Report struct {
	ID         string       `yaml:"id"`
	CreatedAt  time.Time    `yaml:"created_at"`
	Files      []FileRecord `yaml:"files"`
	Violations []Violation  `yaml:"violations"`
}

// Result is what a check run hands to the UI.
type Result struct {
	Files      []FileRecord
	Violations []Violation
	Warnings   []error
}

// Scanned returns the number of files that were read and scanned.
func (r Result) Scanned() int {
	n := 0

	for _, f := range r.Files {
		if !f.Skipped {
			n++
		}
	}

	return n
}
