// Package domain contains the scope tracker, the naming rules and the check workflow.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/namecheck/internal/adapter"
	m "github.com/mouse-blink/namecheck/internal/model"
)

// ListArgs selects the files a command works on.
type ListArgs struct {
	Paths        []m.Path
	Extensions   []string
	ExcludeDirs  []string
	ExcludeFiles []string
}

// CheckArgs configures a check run.
type CheckArgs struct {
	ListArgs
	Policy  m.NamingPolicy
	Threads int
	// Reports is the directory the run is stored in; empty disables storage.
	Reports m.Path
}

// WatchArgs configures watch mode.
type WatchArgs struct {
	CheckArgs
	Debounce time.Duration
}

// ViewArgs selects the stored reports to show.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	List(args ListArgs) error
	Check(args CheckArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	watcher     adapter.ChangeWatcher
	ui          adapter.UI
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	watcher adapter.ChangeWatcher,
	ui adapter.UI,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		watcher:     watcher,
		ui:          ui,
		now:         time.Now,
	}
}

// List discovers the source files and displays them.
func (w *workflow) List(args ListArgs) error {
	paths, err := w.discover(args)
	if err != nil {
		return err
	}

	return w.ui.DisplaySources(paths)
}

// Check scans every discovered file, displays the outcome and stores it when
// a reports directory is set. It returns ErrViolationsFound when the run
// reported anything.
func (w *workflow) Check(args CheckArgs) error {
	paths, err := w.discover(args.ListArgs)
	if err != nil {
		return err
	}

	result := w.scanFiles(paths, args.Policy, args.Threads)

	if err := w.ui.DisplayResult(result); err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.saveReport(args.Reports, result); err != nil {
			return err
		}
	}

	if len(result.Violations) > 0 {
		return ErrViolationsFound
	}

	return nil
}

// Watch runs Check once and again after every batch of source changes until
// ctx is done. Violations do not stop the loop.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	filter, err := newFilter(args.ListArgs)
	if err != nil {
		return err
	}

	if err := w.Check(args.CheckArgs); err != nil && !errors.Is(err, ErrViolationsFound) {
		return err
	}

	opts := adapter.WatchOptions{
		Roots:    roots(args.ListArgs),
		Filter:   filter,
		Debounce: args.Debounce,
	}

	return w.watcher.Watch(ctx, opts, func(changed []m.Path) {
		slog.Info("re-checking", "changed", len(changed))

		if err := w.Check(args.CheckArgs); err != nil && !errors.Is(err, ErrViolationsFound) {
			slog.Error("check failed", "error", err)
		}
	})
}

// View displays the most recent stored report.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		return fmt.Errorf("no reports found in %s", args.Reports)
	}

	return w.ui.DisplayReport(reports[0])
}

func newFilter(args ListArgs) (*adapter.FileFilter, error) {
	return adapter.NewFileFilter(args.Extensions, args.ExcludeDirs, args.ExcludeFiles)
}

func (w *workflow) discover(args ListArgs) ([]m.Path, error) {
	filter, err := newFilter(args)
	if err != nil {
		return nil, err
	}

	return w.fsAdapter.Get(roots(args), filter)
}

// roots defaults to the working directory, recursively.
func roots(args ListArgs) []m.Path {
	if len(args.Paths) == 0 {
		return []m.Path{"./..."}
	}

	return args.Paths
}

// fileOutcome is the per-file slot filled by a scan worker.
type fileOutcome struct {
	violations []m.Violation
	err        error
}

// scanFiles reads and scans files on up to threads workers. Each worker
// writes only its own slot, so the merged output keeps file order and,
// within a file, line order regardless of scheduling.
func (w *workflow) scanFiles(paths []m.Path, policy m.NamingPolicy, threads int) m.Result {
	if threads <= 0 {
		threads = 1
	}

	outcomes := make([]fileOutcome, len(paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			outcomes[i] = w.scanFile(path, policy)
			return nil
		})
	}

	_ = g.Wait()

	result := m.Result{Files: make([]m.FileRecord, 0, len(paths))}

	for i, path := range paths {
		record := m.FileRecord{File: m.File{Path: path}}

		if err := outcomes[i].err; err != nil {
			record.Skipped = true
			record.Error = err.Error()
			result.Warnings = append(result.Warnings, err)
		} else {
			record.Violations = len(outcomes[i].violations)
			result.Violations = append(result.Violations, outcomes[i].violations...)
		}

		result.Files = append(result.Files, record)
	}

	return result
}

func (w *workflow) scanFile(path m.Path, policy m.NamingPolicy) fileOutcome {
	source, err := w.fsAdapter.ReadSource(path)
	if err != nil {
		slog.Debug("skipping unreadable file", "path", path, "error", err)
		return fileOutcome{err: &ReadError{Path: path, Err: err}}
	}

	violations := ScanFile(policy, source)
	slog.Debug("scanned file", "path", path, "lines", len(source.Lines), "violations", len(violations))

	return fileOutcome{violations: violations}
}

func (w *workflow) saveReport(dir m.Path, result m.Result) error {
	report := m.Report{
		ID:         uuid.NewString(),
		CreatedAt:  w.now().UTC(),
		Files:      slices.Clone(result.Files),
		Violations: result.Violations,
	}

	for i := range report.Files {
		if report.Files[i].Skipped {
			continue
		}

		hash, err := w.fsAdapter.HashFile(report.Files[i].File.Path)
		if err != nil {
			slog.Debug("hash failed", "path", report.Files[i].File.Path, "error", err)
			continue
		}

		report.Files[i].File.Hash = hash
	}

	path, err := w.reportStore.SaveReport(dir, report)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	slog.Debug("report saved", "path", path, "id", report.ID)

	return nil
}
