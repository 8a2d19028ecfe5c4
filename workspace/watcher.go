package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Watcher polls the workspace root and re-parses documents whose
// modification time changed.
type Watcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(*File)
	onRemove     func(path string)
}

type WatcherOption func(*Watcher)

func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.pollInterval = d
	}
}

// OnChange is called with every file that was added or modified.
func OnChange(fn func(*File)) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// OnRemove is called with the path of every file that disappeared.
func OnRemove(fn func(path string)) WatcherOption {
	return func(w *Watcher) {
		w.onRemove = fn
	}
}

func NewWatcher(ws *Workspace, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		workspace:    ws,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *Watcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan performs a single poll. It is not safe to call concurrently with a
// running watcher.
func (w *Watcher) Scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(w.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsDocument(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			if err := w.workspace.ScanFile(path); err != nil {
				return nil
			}
			log.Infof("changed: %s", path)
			if w.onChange != nil {
				w.onChange(w.workspace.GetFile(path))
			}
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.workspace.RemoveFile(path)
			log.Infof("removed: %s", path)
			if w.onRemove != nil {
				w.onRemove(path)
			}
		}
	}
}
