package bindings

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWindow is how long the watcher keeps collecting changes after the
// first one before reporting them as a single reload.
const DefaultWindow = 100 * time.Millisecond

// Watcher groups changes to bindings and script files into reload batches.
// An editor saving a layout and its script back to back produces one batch,
// so the layout is reapplied once.
type Watcher struct {
	fs      *fsnotify.Watcher
	window  time.Duration
	batches chan []string
	errs    chan error
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs with DefaultWindow.
func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherWindow(DefaultWindow, dirs...)
}

func NewWatcherWindow(window time.Duration, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		window:  window,
		batches: make(chan []string, 4),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers sorted, deduplicated paths, one slice per window.
func (w *Watcher) Changes() <-chan []string {
	return w.batches
}

func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Drain merges every batch delivered so far without blocking. It returns nil
// when nothing changed.
func (w *Watcher) Drain() []string {
	var merged []string
	for {
		select {
		case batch, ok := <-w.batches:
			if !ok {
				return merged
			}
			merged = append(merged, batch...)
		default:
			if len(merged) == 0 {
				return nil
			}
			slices.Sort(merged)
			return slices.Compact(merged)
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.batches)
		close(w.errs)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := map[string]struct{}{}
	var flush <-chan time.Time
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !reloads(event) {
				continue
			}
			pending[event.Name] = struct{}{}
			if flush == nil {
				flush = time.After(w.window)
			}

		case <-flush:
			flush = nil
			batch := slices.Sorted(maps.Keys(pending))
			clear(pending)
			select {
			case w.batches <- batch:
			case <-w.stop:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}

		case <-w.stop:
			return
		}
	}
}

// reloads reports whether event touches a file a layout depends on.
func reloads(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
