// Package watch re-runs pod synchronization when the Podfile changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	log "github.com/chmouel/podbridge/internal/log"
	"github.com/chmouel/podbridge/internal/project"
)

// Watcher debounces Podfile change events and invokes a callback.
type Watcher struct {
	platform project.Platform
	debounce time.Duration
	onChange func()

	fsw    *fsnotify.Watcher
	events chan struct{}
}

// New constructs a Watcher for the platform's Podfile. onChange is called
// from the watch goroutine after each debounced burst of events.
func New(p project.Platform, debounce time.Duration, onChange func()) *Watcher {
	return &Watcher{
		platform: p,
		debounce: debounce,
		onChange: onChange,
	}
}

// Run watches until the context is cancelled. The platform root directory is
// watched rather than the Podfile itself so editors that replace the file on
// save keep being observed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close() //nolint:errcheck

	if err := fsw.Add(w.platform.Root); err != nil {
		return err
	}

	w.fsw = fsw
	w.events = make(chan struct{}, 1)

	go w.collect(ctx)

	podfile := w.platform.Podfile()
	log.Printf("watching %s", podfile)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case <-w.events:
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

// collect filters raw fsnotify events down to Podfile changes.
func (w *Watcher) collect(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != "Podfile" {
				continue
			}
			w.signal()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}
