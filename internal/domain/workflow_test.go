package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/namecheck/internal/adapter"
	adaptermocks "github.com/mouse-blink/namecheck/internal/adapter/mocks"
	m "github.com/mouse-blink/namecheck/internal/model"
)

type workflowMocks struct {
	fs      *adaptermocks.MockSourceFSAdapter
	store   *adaptermocks.MockReportStore
	watcher *adaptermocks.MockChangeWatcher
	ui      *adaptermocks.MockUI
}

func newTestWorkflow(t *testing.T) (*workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		fs:      adaptermocks.NewMockSourceFSAdapter(t),
		store:   adaptermocks.NewMockReportStore(t),
		watcher: adaptermocks.NewMockChangeWatcher(t),
		ui:      adaptermocks.NewMockUI(t),
	}

	wf, ok := NewWorkflow(mocks.fs, mocks.store, mocks.watcher, mocks.ui).(*workflow)
	require.True(t, ok)

	return wf, mocks
}

func defaultCheckArgs(paths ...m.Path) CheckArgs {
	return CheckArgs{
		ListArgs: ListArgs{Paths: paths},
		Policy:   m.DefaultNamingPolicy(),
		Threads:  1,
	}
}

func TestWorkflow_List(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	paths := []m.Path{"Source/AActor.h", "Source/AActor.cpp"}

	mocks.fs.On("Get", []m.Path{"./..."}, mock.AnythingOfType("*adapter.FileFilter")).Return(paths, nil)
	mocks.ui.On("DisplaySources", paths).Return(nil)

	require.NoError(t, wf.List(ListArgs{}))
}

func TestWorkflow_List_GetError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.On("Get", []m.Path{"missing"}, mock.Anything).Return(nil, errors.New("root path error: missing"))

	err := wf.List(ListArgs{Paths: []m.Path{"missing"}})
	assert.EqualError(t, err, "root path error: missing")
}

func TestWorkflow_Check_Clean(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.On("Get", []m.Path{"GoodActor.cpp"}, mock.Anything).Return([]m.Path{"GoodActor.cpp"}, nil)
	mocks.fs.On("ReadSource", m.Path("GoodActor.cpp")).Return(sourceOf("GoodActor.cpp", goodActorSource), nil)
	mocks.ui.On("DisplayResult", mock.MatchedBy(func(r m.Result) bool {
		return r.Scanned() == 1 && len(r.Violations) == 0 && len(r.Warnings) == 0
	})).Return(nil)

	require.NoError(t, wf.Check(defaultCheckArgs("GoodActor.cpp")))
}

func TestWorkflow_Check_ViolationsFound(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.On("Get", mock.Anything, mock.Anything).Return([]m.Path{"BadActor.cpp"}, nil)
	mocks.fs.On("ReadSource", m.Path("BadActor.cpp")).Return(sourceOf("BadActor.cpp", badActorSource), nil)

	var shown m.Result

	mocks.ui.On("DisplayResult", mock.Anything).Run(func(args mock.Arguments) {
		shown = args.Get(0).(m.Result)
	}).Return(nil)

	err := wf.Check(defaultCheckArgs())
	require.ErrorIs(t, err, ErrViolationsFound)

	require.Len(t, shown.Violations, 5)
	require.Len(t, shown.Files, 1)
	assert.Equal(t, 5, shown.Files[0].Violations)
}

func TestWorkflow_Check_ParallelKeepsFileOrder(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	var paths []m.Path
	for i := range 12 {
		paths = append(paths, m.Path(fmt.Sprintf("File%02d.h", i)))
	}

	mocks.fs.On("Get", mock.Anything, mock.Anything).Return(paths, nil)

	for _, p := range paths {
		mocks.fs.On("ReadSource", p).Return(m.SourceFile{
			Path:  p,
			Lines: []string{"class Bad {", "    int bad_member;", "};"},
		}, nil)
	}

	var shown m.Result

	mocks.ui.On("DisplayResult", mock.Anything).Run(func(args mock.Arguments) {
		shown = args.Get(0).(m.Result)
	}).Return(nil)

	args := defaultCheckArgs()
	args.Threads = 4

	require.ErrorIs(t, wf.Check(args), ErrViolationsFound)
	require.Len(t, shown.Violations, 2*len(paths))

	for i, p := range paths {
		assert.Equal(t, p, shown.Files[i].File.Path)
		assert.Equal(t, p, shown.Violations[2*i].File)
		assert.Equal(t, 1, shown.Violations[2*i].Line)
		assert.Equal(t, 2, shown.Violations[2*i+1].Line)
	}
}

func TestWorkflow_Check_ReadErrorIsWarning(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	readErr := errors.New("permission denied")

	mocks.fs.On("Get", mock.Anything, mock.Anything).Return([]m.Path{"Locked.h", "AOk.h"}, nil)
	mocks.fs.On("ReadSource", m.Path("Locked.h")).Return(m.SourceFile{}, readErr)
	mocks.fs.On("ReadSource", m.Path("AOk.h")).Return(m.SourceFile{Path: "AOk.h", Lines: []string{"class AOk {};"}}, nil)

	var shown m.Result

	mocks.ui.On("DisplayResult", mock.Anything).Run(func(args mock.Arguments) {
		shown = args.Get(0).(m.Result)
	}).Return(nil)

	require.NoError(t, wf.Check(defaultCheckArgs()))

	require.Len(t, shown.Warnings, 1)

	var re *ReadError
	require.ErrorAs(t, shown.Warnings[0], &re)
	assert.Equal(t, m.Path("Locked.h"), re.Path)
	assert.ErrorIs(t, shown.Warnings[0], readErr)
	assert.Equal(t, "cannot read file Locked.h: permission denied", re.Error())

	assert.True(t, shown.Files[0].Skipped)
	assert.Equal(t, re.Error(), shown.Files[0].Error)
	assert.Equal(t, 1, shown.Scanned())
}

func TestWorkflow_Check_SavesReport(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wf.now = func() time.Time { return fixed }

	mocks.fs.On("Get", mock.Anything, mock.Anything).Return([]m.Path{"Foo.h", "Gone.h"}, nil)
	mocks.fs.On("ReadSource", m.Path("Foo.h")).Return(m.SourceFile{Path: "Foo.h", Lines: []string{"class Foo {", "};"}}, nil)
	mocks.fs.On("ReadSource", m.Path("Gone.h")).Return(m.SourceFile{}, errors.New("no such file"))
	mocks.fs.On("HashFile", m.Path("Foo.h")).Return("abc123", nil)
	mocks.ui.On("DisplayResult", mock.Anything).Return(nil)

	var saved m.Report

	mocks.store.On("SaveReport", m.Path(".namecheck-reports"), mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(m.Report)
	}).Return(m.Path(".namecheck-reports/0123456789abcdef.yaml"), nil)

	args := defaultCheckArgs()
	args.Reports = ".namecheck-reports"

	require.ErrorIs(t, wf.Check(args), ErrViolationsFound)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, fixed, saved.CreatedAt)
	require.Len(t, saved.Files, 2)
	assert.Equal(t, "abc123", saved.Files[0].File.Hash)
	assert.True(t, saved.Files[1].Skipped)
	assert.Empty(t, saved.Files[1].File.Hash)
	require.Len(t, saved.Violations, 1)
	assert.Equal(t, m.RuleClassPrefix, saved.Violations[0].Rule)
}

func TestWorkflow_Check_SaveReportError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.On("Get", mock.Anything, mock.Anything).Return([]m.Path{}, nil)
	mocks.ui.On("DisplayResult", mock.Anything).Return(nil)
	mocks.store.On("SaveReport", mock.Anything, mock.Anything).Return(m.Path(""), errors.New("disk full"))

	args := defaultCheckArgs()
	args.Reports = "out"

	err := wf.Check(args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NotErrorIs(t, err, ErrViolationsFound)
}

func TestWorkflow_View(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	newest := m.Report{ID: "new", CreatedAt: time.Now()}
	older := m.Report{ID: "old", CreatedAt: time.Now().Add(-time.Hour)}

	mocks.store.On("LoadReports", m.Path("reports")).Return([]m.Report{newest, older}, nil)
	mocks.ui.On("DisplayReport", newest).Return(nil)

	require.NoError(t, wf.View(ViewArgs{Reports: "reports"}))
}

func TestWorkflow_View_NoReports(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.store.On("LoadReports", m.Path("reports")).Return(nil, nil)

	err := wf.View(ViewArgs{Reports: "reports"})
	assert.EqualError(t, err, "no reports found in reports")
}

func TestWorkflow_Watch_RechecksOnChange(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.On("Get", []m.Path{"Source/..."}, mock.Anything).Return([]m.Path{"Source/Foo.h"}, nil).Times(2)
	mocks.fs.On("ReadSource", m.Path("Source/Foo.h")).Return(m.SourceFile{Path: "Source/Foo.h", Lines: []string{"class Foo {};"}}, nil).Times(2)
	mocks.ui.On("DisplayResult", mock.Anything).Return(nil).Times(2)

	mocks.watcher.On("Watch", mock.Anything, mock.MatchedBy(func(opts adapter.WatchOptions) bool {
		return len(opts.Roots) == 1 && opts.Roots[0] == "Source/..." && opts.Filter != nil && opts.Debounce == 50*time.Millisecond
	}), mock.Anything).Return(func(_ context.Context, _ adapter.WatchOptions, onChange func([]m.Path)) error {
		onChange([]m.Path{"Source/Foo.h"})
		return nil
	})

	args := WatchArgs{CheckArgs: defaultCheckArgs("Source/..."), Debounce: 50 * time.Millisecond}

	require.NoError(t, wf.Watch(context.Background(), args))
}

func TestWorkflow_Watch_InitialCheckError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("root path error"))

	err := wf.Watch(context.Background(), WatchArgs{CheckArgs: defaultCheckArgs("nowhere")})
	assert.EqualError(t, err, "root path error")
}
