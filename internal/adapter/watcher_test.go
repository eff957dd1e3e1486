package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/namecheck/internal/model"
)

func startWatch(t *testing.T, opts WatchOptions) (<-chan []m.Path, context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	batches := make(chan []m.Path, 8)
	done := make(chan error, 1)

	go func() {
		done <- NewLocalWatcher().Watch(ctx, opts, func(paths []m.Path) {
			batches <- paths
		})
	}()

	// let the session register its watches
	time.Sleep(100 * time.Millisecond)

	return batches, cancel, done
}

func TestLocalWatcher_ReportsSourceChanges(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "Private"))

	batches, cancel, done := startWatch(t, WatchOptions{
		Roots:    []m.Path{m.Path(root + "/...")},
		Debounce: 50 * time.Millisecond,
	})

	writeTestFile(t, filepath.Join(root, "Private", "AThing.cpp"), "class AThing {};\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "ignored\n")

	select {
	case paths := <-batches:
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "Private", "AThing.cpp"))}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch reported")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestLocalWatcher_DebouncesBursts(t *testing.T) {
	root := t.TempDir()

	batches, cancel, done := startWatch(t, WatchOptions{
		Roots:    []m.Path{m.Path(root)},
		Debounce: 200 * time.Millisecond,
	})
	defer func() {
		cancel()
		<-done
	}()

	path := filepath.Join(root, "ABurst.h")
	for i := 0; i < 5; i++ {
		writeTestFile(t, path, "int Value;\n")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case paths := <-batches:
		assert.Equal(t, []m.Path{m.Path(path)}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch reported")
	}

	select {
	case extra := <-batches:
		t.Fatalf("unexpected second batch %v", extra)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestLocalWatcher_SkipsExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "Intermediate"))

	filter, err := NewFileFilter(nil, []string{"Intermediate"}, nil)
	require.NoError(t, err)

	batches, cancel, done := startWatch(t, WatchOptions{
		Roots:    []m.Path{m.Path(root + "/...")},
		Filter:   filter,
		Debounce: 50 * time.Millisecond,
	})
	defer func() {
		cancel()
		<-done
	}()

	writeTestFile(t, filepath.Join(root, "Intermediate", "Gen.h"), "class gen {};\n")

	select {
	case paths := <-batches:
		t.Fatalf("unexpected batch %v", paths)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestLocalWatcher_PlainDirectoryRootRecurses(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "Public"))

	batches, cancel, done := startWatch(t, WatchOptions{
		Roots:    []m.Path{m.Path(root)},
		Debounce: 50 * time.Millisecond,
	})
	defer func() {
		cancel()
		<-done
	}()

	path := filepath.Join(root, "Public", "AThing.h")
	writeTestFile(t, path, "class AThing {};\n")

	select {
	case paths := <-batches:
		assert.Equal(t, []m.Path{m.Path(path)}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch reported for nested file")
	}
}

func TestWatchSession_NoCallbackAfterClose(t *testing.T) {
	fsw, err := fsnotify.NewWatcher()
	require.NoError(t, err)

	calls := 0
	s := &watchSession{
		fsWatcher: fsw,
		debounce:  time.Hour,
		onChange:  func([]m.Path) { calls++ },
		pending:   map[string]struct{}{"AThing.h": {}},
	}

	s.close()

	// a timer that fired just before close still runs its flush
	s.flushChanges()

	assert.Zero(t, calls, "onChange ran after the session closed")
}

func TestWatchSession_CloseWaitsForRunningCallback(t *testing.T) {
	fsw, err := fsnotify.NewWatcher()
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})

	s := &watchSession{
		fsWatcher: fsw,
		debounce:  time.Hour,
		onChange: func([]m.Path) {
			close(entered)
			<-release
			close(finished)
		},
		pending: map[string]struct{}{"AThing.h": {}},
	}

	go s.flushChanges()
	<-entered

	closed := make(chan struct{})
	go func() {
		s.close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("close returned while onChange was still running")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("close did not return after onChange finished")
	}

	select {
	case <-finished:
	default:
		t.Fatal("close returned before onChange finished")
	}
}

func TestLocalWatcher_MissingRoot(t *testing.T) {
	err := NewLocalWatcher().Watch(context.Background(), WatchOptions{
		Roots: []m.Path{m.Path(filepath.Join(t.TempDir(), "gone"))},
	}, func([]m.Path) {})

	assert.ErrorIs(t, err, os.ErrNotExist)
}
