package adapter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 500 * time.Millisecond

// WatchOptions selects what a watch session observes.
type WatchOptions struct {
	Roots  []m.Path
	Filter *FileFilter
	// Debounce is the quiet period before a batch is reported; zero means DefaultDebounce.
	Debounce time.Duration
}

// ChangeWatcher reports changes to source files under a set of roots.
type ChangeWatcher interface {
	// Watch blocks until ctx is done, calling onChange with the batch of
	// changed paths after each quiet period. Calls never overlap.
	Watch(ctx context.Context, opts WatchOptions, onChange func([]m.Path)) error
}

// LocalWatcher is the fsnotify-backed ChangeWatcher.
type LocalWatcher struct{}

// NewLocalWatcher creates a LocalWatcher.
func NewLocalWatcher() *LocalWatcher {
	return &LocalWatcher{}
}

type watchSession struct {
	fsWatcher  *fsnotify.Watcher
	filter     *FileFilter
	debounce   time.Duration
	onChange   func([]m.Path)
	callbackMu sync.Mutex
	// closed is guarded by callbackMu; no callback runs once it is set.
	closed bool

	pending   map[string]struct{}
	pendingMu sync.Mutex
	timer     *time.Timer
}

// Watch implements ChangeWatcher.
func (w *LocalWatcher) Watch(ctx context.Context, opts WatchOptions, onChange func([]m.Path)) error {
	filter := opts.Filter
	if filter == nil {
		var err error
		if filter, err = NewFileFilter(nil, nil, nil); err != nil {
			return err
		}
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	s := &watchSession{
		fsWatcher: fsw,
		filter:    filter,
		debounce:  debounce,
		onChange:  onChange,
		pending:   make(map[string]struct{}),
	}
	defer s.close()

	for _, root := range opts.Roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			return err
		}

		if err := s.add(rootPath); err != nil {
			return err
		}
	}

	return s.run(ctx)
}

func (s *watchSession) add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return s.fsWatcher.Add(filepath.Dir(root))
	}

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path != root && s.filter.SkipDir(path) {
			return filepath.SkipDir
		}

		return s.fsWatcher.Add(path)
	})
}

func (s *watchSession) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-s.fsWatcher.Events:
			if !ok {
				return nil
			}

			s.handle(event)

		case err, ok := <-s.fsWatcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("watcher error", "error", err)
		}
	}
}

func (s *watchSession) handle(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if !s.filter.SkipDir(event.Name) {
				if err := s.add(event.Name); err != nil {
					slog.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
			}

			return
		}
	}

	if !s.filter.MatchFile(event.Name) {
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
		slog.Debug("source changed", "path", event.Name, "op", event.Op.String())
		s.scheduleChange(event.Name)
	}
}

func (s *watchSession) scheduleChange(path string) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	s.pending[path] = struct{}{}

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.debounce, s.flushChanges)
}

func (s *watchSession) flushChanges() {
	s.pendingMu.Lock()
	paths := make([]m.Path, 0, len(s.pending))

	for path := range s.pending {
		paths = append(paths, m.Path(path))
	}

	s.pending = make(map[string]struct{})
	s.pendingMu.Unlock()

	if len(paths) == 0 {
		return
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	s.callbackMu.Lock()
	defer s.callbackMu.Unlock()

	if s.closed {
		return
	}

	s.onChange(paths)
}

func (s *watchSession) close() {
	s.pendingMu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pendingMu.Unlock()

	// an AfterFunc that already fired is not stopped by Stop; wait for any
	// running callback and keep later ones from reaching onChange
	s.callbackMu.Lock()
	s.closed = true
	s.callbackMu.Unlock()

	_ = s.fsWatcher.Close()
}
