package controller

import (
	"errors"
	"sort"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// ruleCount is one row of the per-rule summary.
type ruleCount struct {
	rule  m.Rule
	count int
}

// countByRule tallies violations per rule, most frequent first.
func countByRule(violations []m.Violation) []ruleCount {
	counts := make(map[m.Rule]int)
	for _, v := range violations {
		counts[v.Rule]++
	}

	rows := make([]ruleCount, 0, len(counts))
	for rule, count := range counts {
		rows = append(rows, ruleCount{rule: rule, count: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}

		return rows[i].rule < rows[j].rule
	})

	return rows
}

// resultFromReport rebuilds the UI view of a stored report.
func resultFromReport(report m.Report) m.Result {
	result := m.Result{Files: report.Files, Violations: report.Violations}

	for _, f := range report.Files {
		if f.Skipped && f.Error != "" {
			result.Warnings = append(result.Warnings, errors.New(f.Error))
		}
	}

	return result
}
