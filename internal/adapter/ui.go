package adapter

import (
	m "github.com/mouse-blink/namecheck/internal/model"
)

// UI defines how discovery and check results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplaySources shows the files a check would scan.
	DisplaySources(paths []m.Path) error
	// DisplayResult shows read warnings, every violation and a summary.
	DisplayResult(result m.Result) error
	// DisplayReport shows a previously stored report.
	DisplayReport(report m.Report) error
}
