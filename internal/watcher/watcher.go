// Package watcher polls a source tree for TypeScript file changes so the
// boundary check can re-run in watch mode.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Op describes what happened to a watched file.
type Op string

const (
	OpCreate Op = "create"
	OpWrite  Op = "write"
	OpRemove Op = "remove"
)

// Event represents a file change event.
type Event struct {
	Path string
	Op   Op
}

// DefaultPollInterval is the default polling interval for file change detection.
const DefaultPollInterval = 500 * time.Millisecond

// skipDirs are directory names never descended into. Dependency and build
// output trees churn constantly and are not part of the checked program.
var skipDirs = map[string]bool{
	"node_modules": true,
	".next":        true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"out":          true,
}

// Watcher watches directories for source file changes using a polling
// approach, for simplicity and cross-platform compatibility. Events are
// debounced so an editor save burst triggers a single re-check.
type Watcher struct {
	dirs         []string
	extensions   []string // e.g., [".ts", ".tsx"]
	debounce     time.Duration
	pollInterval time.Duration
	onChange     func(events []Event)

	mu      sync.Mutex
	pending []Event
	timer   *time.Timer
	stopCh  chan struct{}
}

// New creates a new file watcher.
func New(dirs []string, extensions []string, debounce time.Duration, onChange func(events []Event)) *Watcher {
	return &Watcher{
		dirs:         dirs,
		extensions:   extensions,
		debounce:     debounce,
		pollInterval: DefaultPollInterval,
		onChange:     onChange,
		stopCh:       make(chan struct{}),
	}
}

// SetPollInterval sets the polling interval for file change detection.
func (w *Watcher) SetPollInterval(d time.Duration) {
	w.pollInterval = d
}

// Watch starts polling for file changes. This is a blocking call that runs
// until Stop() is called.
func (w *Watcher) Watch() error {
	snapshot := w.buildSnapshot()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			newSnapshot := w.buildSnapshot()
			events := w.diff(snapshot, newSnapshot)
			if len(events) > 0 {
				w.mu.Lock()
				w.pending = append(w.pending, events...)
				if w.timer != nil {
					w.timer.Stop()
				}
				w.timer = time.AfterFunc(w.debounce, func() {
					w.mu.Lock()
					pending := w.pending
					w.pending = nil
					w.mu.Unlock()
					if len(pending) > 0 {
						w.onChange(pending)
					}
				})
				w.mu.Unlock()
			}
			snapshot = newSnapshot
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

type fileStamp struct {
	modTime time.Time
	size    int64
}

func (w *Watcher) buildSnapshot() map[string]fileStamp {
	snap := make(map[string]fileStamp)
	for _, dir := range w.dirs {
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if skipDirs[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			ext := filepath.Ext(path)
			for _, e := range w.extensions {
				if ext == e {
					snap[path] = fileStamp{modTime: info.ModTime(), size: info.Size()}
					break
				}
			}
			return nil
		})
	}
	return snap
}

func (w *Watcher) diff(old, current map[string]fileStamp) []Event {
	var events []Event

	for path, stamp := range current {
		if oldStamp, ok := old[path]; ok {
			if stamp.modTime != oldStamp.modTime || stamp.size != oldStamp.size {
				events = append(events, Event{Path: path, Op: OpWrite})
			}
		} else {
			events = append(events, Event{Path: path, Op: OpCreate})
		}
	}

	for path := range old {
		if _, ok := current[path]; !ok {
			events = append(events, Event{Path: path, Op: OpRemove})
		}
	}

	return events
}
