package controller

import m "github.com/mouse-blink/namecheck/internal/model"

// List item types.
type violationItem struct {
	violation m.Violation
}

func (v violationItem) FilterValue() string {
	return v.violation.String()
}
