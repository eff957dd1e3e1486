package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// TUI implements UI using lipgloss styling, switching to an interactive
// Bubble Tea list when the results do not fit on screen.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySources prints the discovered files.
func (t *TUI) DisplaySources(paths []m.Path) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("namecheck sources"))
	b.WriteString("\n\n")

	if len(paths) == 0 {
		b.WriteString(footerStyle.Render("  No source files found"))
		b.WriteString("\n")
	}

	for _, path := range paths {
		b.WriteString("  ")
		b.WriteString(locationStyle.Render(string(path)))
		b.WriteString("\n")
	}

	b.WriteString(summaryStyle.Render(fmt.Sprintf("\nTotal Files %s", accentStyle.Render(fmt.Sprintf("%d", len(paths))))))
	b.WriteString("\n")

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayResult shows a check run.
func (t *TUI) DisplayResult(result m.Result) error {
	return t.show(newReportModel("namecheck", result))
}

// DisplayReport shows a stored report.
func (t *TUI) DisplayReport(report m.Report) error {
	title := fmt.Sprintf("namecheck report %s (%s)", report.ID, report.CreatedAt.Format("2006-01-02 15:04:05"))

	return t.show(newReportModel(title, resultFromReport(report)))
}

func (t *TUI) show(model reportModel) error {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	// If everything fits, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	// the alternate screen is gone now; leave the verdict in the scrollback
	_, err := fmt.Fprintln(t.output, summaryLine(model.result))

	return err
}
