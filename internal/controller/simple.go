package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// SimpleUI implements UI with plain text written through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySources prints one path per line followed by a count.
func (s *SimpleUI) DisplaySources(paths []m.Path) error {
	if len(paths) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	for _, path := range paths {
		s.printf("%s\n", path)
	}

	s.printf("\nTotal Files %d\n", len(paths))

	return nil
}

// DisplayResult prints warnings to stderr, then one "<file>:<line> <message>"
// line per violation and the summary.
func (s *SimpleUI) DisplayResult(result m.Result) error {
	for _, w := range result.Warnings {
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: %v\n", w)
	}

	for _, v := range result.Violations {
		s.printf("%s\n", v.String())
	}

	if len(result.Violations) == 0 {
		s.printf("All naming conventions passed! (%d files scanned)\n", result.Scanned())
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, row := range countByRule(result.Violations) {
		table.Append([]string{string(row.rule), fmt.Sprintf("%d", row.count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Files %d", result.Scanned()),
		fmt.Sprintf("%d", len(result.Violations)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
	s.printf("\nFound %d naming errors.\n", len(result.Violations))

	return nil
}

// DisplayReport prints a stored report the same way a live run is printed.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	s.printf("Report %s (%s)\n\n", report.ID, report.CreatedAt.Format("2006-01-02 15:04:05"))

	return s.DisplayResult(resultFromReport(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
