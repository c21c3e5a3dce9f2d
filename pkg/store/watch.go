package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/timeline/pkg/logger"
)

// EventType describes a seed file change notification.
type EventType int

const (
	// EventSeedChanged means the seed file was written or replaced.
	EventSeedChanged EventType = iota

	// EventSeedRemoved means the seed file disappeared. Callers usually keep
	// the items they already hold.
	EventSeedRemoved
)

func (t EventType) String() string {
	switch t {
	case EventSeedChanged:
		return "changed"
	case EventSeedRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is emitted by WatchSeed.
type Event struct {
	Type EventType
	Path string
}

const watchThrottle = 100 * time.Millisecond

// WatchSeed streams change events for the seed file at path until ctx is
// cancelled. The parent directory is watched so editors that replace the file
// on save are still seen. The channel is closed once ctx is done or the
// watcher fails.
func WatchSeed(ctx context.Context, path string) (<-chan Event, error) {
	if path == "" {
		return nil, errors.New("store: seed path unknown")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				logger.L().Warn("watcher close", "error", err)
			}
		})
	}

	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		var sendMu sync.Mutex
		done := false
		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if done {
				return
			}
			select {
			case events <- ev:
			default:
				// Consumer is behind; the next event triggers a fresh reload anyway.
			}
		}

		throttle := newEventThrottle(watchThrottle)
		defer func() {
			throttle.Stop()
			sendMu.Lock()
			done = true
			sendMu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.L().Warn("seed watcher error", "path", abs, "error", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				switch {
				case evt.Op&(fsnotify.Write|fsnotify.Create) != 0:
					throttle.Enqueue(Event{Type: EventSeedChanged, Path: abs}, send)
				case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					throttle.Enqueue(Event{Type: EventSeedRemoved, Path: abs}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of filesystem activity so a save triggers a
// single reload. The latest event type wins.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending = &ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	t.mu.Unlock()

	if pending != nil {
		send(*pending)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = nil
	t.mu.Unlock()
}
