// Package controller provides the terminal front ends for namecheck results.
package controller

import (
	"github.com/mouse-blink/namecheck/internal/adapter"
)

var (
	_ adapter.UI = (*SimpleUI)(nil)
	_ adapter.UI = (*TUI)(nil)
)
