package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/namecheck/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves check reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReports(dir m.Path) ([]m.Report, error)
}

// LocalReportStore writes one YAML document per run into a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to dir under a name derived from its content, so
// identical runs overwrite the same file.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(string(dir), rs.computeReportHash(report)+reportExt)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReports reads every report in dir, newest first. A missing directory
// yields no reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != reportExt {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		// #nosec G304 - path is built from the reports directory listing
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// computeReportHash fingerprints the files and violations of a report,
// ignoring its ID and timestamp.
func (rs *LocalReportStore) computeReportHash(report m.Report) string {
	h := sha256.New()

	for _, f := range report.Files {
		_, _ = fmt.Fprintf(h, "file\x00%s\x00%s\x00%t\n", f.File.Path, f.File.Hash, f.Skipped)
	}

	for _, v := range report.Violations {
		_, _ = fmt.Fprintf(h, "violation\x00%s\x00%s\n", v.String(), v.Rule)
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}
