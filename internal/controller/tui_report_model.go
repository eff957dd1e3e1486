package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// header, summary and footer rows around the violation list
const reservedLines = 7

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type violationDelegate struct{}

func (d violationDelegate) Height() int  { return 1 }
func (d violationDelegate) Spacing() int { return 0 }
func (d violationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d violationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	vi, ok := item.(violationItem)
	if !ok {
		return
	}

	location := fmt.Sprintf("%s:%d", vi.violation.File, vi.violation.Line)
	text := truncateToWidth(location+" "+vi.violation.Message, lm.Width()-2)

	if index == lm.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		_, _ = fmt.Fprint(w, selected.Render("> "+text))

		return
	}

	_, _ = fmt.Fprint(w, "  "+renderViolationLine(text, location))
}

// renderViolationLine colours the location part of a possibly truncated line.
func renderViolationLine(text, location string) string {
	if !strings.HasPrefix(text, location) {
		return locationStyle.Render(text)
	}

	return locationStyle.Render(location) + messageStyle.Render(text[len(location):])
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportModel pages through the violations of one run.
type reportModel struct {
	title  string
	result m.Result
	list   list.Model
	width  int
	height int
}

func newReportModel(title string, result m.Result) reportModel {
	items := make([]list.Item, 0, len(result.Violations))
	for _, v := range result.Violations {
		items = append(items, violationItem{violation: v})
	}

	violationList := list.New(items, violationDelegate{}, 80, 20)
	violationList.SetShowPagination(false)
	violationList.SetShowFilter(true)
	violationList.SetShowHelp(false)
	violationList.SetShowTitle(false)
	violationList.SetShowStatusBar(false)
	violationList.FilterInput.Placeholder = "Filter by file or name…"

	return reportModel{title: title, result: result, list: violationList}
}

// needsPagination is false when the size is unknown or everything fits.
func (rm reportModel) needsPagination() bool {
	if rm.height <= 0 {
		return false
	}

	return len(rm.result.Violations)+len(rm.result.Warnings)+reservedLines > rm.height
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.list.SetSize(max(rm.width-2, 10), max(rm.height-reservedLines, 3))

		return rm, nil

	case tea.KeyMsg:
		if rm.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return rm, tea.Quit
			}
		} else if msg.String() == "ctrl+c" {
			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd

	rm.list, cmd = rm.list.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	footer := footerStyle.Render("  ↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		rm.renderHeader(),
		rm.list.View(),
		footer,
	)
}

func (rm reportModel) renderHeader() string {
	title := titleStyle.Render(rm.title)

	summary := summaryStyle.Render(fmt.Sprintf(
		"Violations: %s   Files: %s   Skipped: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(rm.result.Violations))),
		accentStyle.Render(fmt.Sprintf("%d", rm.result.Scanned())),
		accentStyle.Render(fmt.Sprintf("%d", len(rm.result.Files)-rm.result.Scanned())),
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary)
}

// staticView renders everything at once, for output that fits or is not interactive.
func (rm reportModel) staticView() string {
	var b strings.Builder

	b.WriteString(rm.renderHeader())
	b.WriteString("\n")

	for _, w := range rm.result.Warnings {
		b.WriteString(warningStyle.Render("⚠ " + w.Error()))
		b.WriteString("\n")
	}

	for _, v := range rm.result.Violations {
		location := fmt.Sprintf("%s:%d", v.File, v.Line)
		b.WriteString(renderViolationLine(location+" "+v.Message, location))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(summaryLine(rm.result))
	b.WriteString("\n")

	return b.String()
}

func summaryLine(result m.Result) string {
	if len(result.Violations) == 0 {
		return passStyle.Render("✔ All naming conventions passed!")
	}

	return messageStyle.Bold(true).Render(fmt.Sprintf("✘ Found %d naming errors.", len(result.Violations)))
}
