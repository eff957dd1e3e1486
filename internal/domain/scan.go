package domain

import (
	m "github.com/mouse-blink/namecheck/internal/model"
)

// Scanner checks files one after another with a single tracker and rule
// engine. It is not safe for concurrent use.
type Scanner struct {
	tracker *Tracker
	engine  *RuleEngine
}

// NewScanner creates a Scanner for the given policy.
func NewScanner(policy m.NamingPolicy) *Scanner {
	return &Scanner{
		tracker: NewTracker(),
		engine:  NewRuleEngine(policy),
	}
}

// ScanFile runs the single forward pass over one file: the tracker reports
// the scope each line starts in, and the engine checks the declarations on
// that line against it. Violations come back in line order. Scope left open
// by a previous file is dropped first.
func (s *Scanner) ScanFile(file m.SourceFile) []m.Violation {
	s.tracker.BeginFile()
	ignores := buildIgnoreIndex(file.Lines)

	var violations []m.Violation

	for i, line := range file.Lines {
		scope := s.tracker.ObserveLine(line)

		for _, decl := range s.engine.Classify(line, scope) {
			for _, v := range s.engine.Evaluate(decl, scope) {
				if ignores.ignores(i+1, v.Rule) {
					continue
				}

				v.File = file.Path
				v.Line = i + 1
				violations = append(violations, v)
			}
		}
	}

	return violations
}

// ScanFile checks a single file with a fresh Scanner.
func ScanFile(policy m.NamingPolicy, file m.SourceFile) []m.Violation {
	return NewScanner(policy).ScanFile(file)
}

// Scan checks every file in order with one Scanner. Files share no scope, so
// the result is the concatenation of ScanFile over files.
func Scan(policy m.NamingPolicy, files ...m.SourceFile) []m.Violation {
	scanner := NewScanner(policy)

	var violations []m.Violation

	for _, file := range files {
		violations = append(violations, scanner.ScanFile(file)...)
	}

	return violations
}
