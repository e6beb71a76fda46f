package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/journal/pkg/core"
)

const defaultDebounce = 50 * time.Millisecond

// Watch implements core.Watchable. It reports changes to note files whose
// base name matches pattern (doublestar syntax, "*" when empty) until ctx is
// done, then closes the returned channel.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, &core.IOError{Op: "watch", Name: r.Path, Err: err}
	}

	window := r.config.Debounce
	if window <= 0 {
		window = defaultDebounce
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(window)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()

		err := r.watchLoop(ctx, watcher, pattern, deb, events)
		deb.stopAndWait()
		return err
	}, lifecycle.WithErrorHandler(r.reportWatchError))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, deb *debouncer, events chan<- core.Event) error {
	emit := func(e core.Event) {
		select {
		case events <- e:
		case <-ctx.Done():
		case <-deb.done:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if e, keep := r.mapEvent(event, pattern); keep {
				deb.add(e, emit)
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.reportWatchError(wErr)
		}
	}
}

// mapEvent filters an fsnotify event down to a note event.
func (r *Repository) mapEvent(event fsnotify.Event, pattern string) (core.Event, bool) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, TempFilePrefix) || !core.IsNoteFile(name) {
		return core.Event{}, false
	}
	if ok, _ := doublestar.Match(pattern, name); !ok {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("event received", "name", name, "type", eType)
	}
	return core.Event{Type: eType, Name: name, Timestamp: time.Now().Unix()}, true
}

func (r *Repository) reportWatchError(err error) {
	if r.config.Logger != nil {
		r.config.Logger.Error("watcher error", "error", err)
	}
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}

// debouncer coalesces bursts of events per note name. The first event for a
// name opens a window; later events inside it are merged into the pending one.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]core.Event
	wg      sync.WaitGroup
	stopped bool
	done    chan struct{}
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		pending: make(map[string]core.Event),
		done:    make(chan struct{}),
	}
}

func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if prev, ok := d.pending[e.Name]; ok {
		d.pending[e.Name] = mergeEvents(prev, e)
		return
	}

	d.pending[e.Name] = e
	d.wg.Add(1)
	time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		ev, ok := d.pending[e.Name]
		delete(d.pending, e.Name)
		stopped := d.stopped
		d.mu.Unlock()

		if ok && !stopped {
			emit(ev)
		}
	})
}

// stopAndWait drops pending events and waits for in-flight timers.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.done)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// mergeEvents keeps a creation visible when it is followed by writes.
func mergeEvents(prev, next core.Event) core.Event {
	if prev.Type == core.EventCreate && next.Type == core.EventModify {
		next.Type = core.EventCreate
	}
	return next
}
