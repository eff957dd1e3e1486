package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// ErrViolationsFound is returned by Check when at least one violation was reported.
var ErrViolationsFound = errors.New("naming violations found")

// ReadError records a file that could not be read or decoded. The file is
// skipped and the run continues.
type ReadError struct {
	Path m.Path
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
