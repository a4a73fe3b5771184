// Package watcher reloads datasets when their files change on disk.
//
// Editors commonly save by writing a temp file and renaming it over the
// original, which drops a watch placed on the file itself. The watcher
// therefore watches each dataset's parent directory and filters events down
// to the dataset file names.
package watcher

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when one or more watched files changed. Paths holds the
// absolute paths that changed during the debounce window.
type Event struct {
	Paths []string
}

// Watch monitors files for writes, creates, renames and removes and sends an
// Event on the returned channel. Rapid bursts are coalesced via the debounce
// window.
//
// Call the returned stop function to tear down the watcher.
func Watch(files []string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	wanted := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			// Non-fatal: the directory may not exist yet.
			continue
		}
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// Jitter spreads reloads when several instances watch the same file.
	jitterRange := debounce / 2

	go func() {
		defer close(ch)
		var timer *time.Timer
		pending := make(map[string]bool)

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if shouldIgnore(ev) || !wanted[filepath.Clean(ev.Name)] {
					continue
				}
				pending[filepath.Clean(ev.Name)] = true
				d := debounce
				if jitterRange > 0 {
					d += time.Duration(rand.Int64N(int64(jitterRange)))
				}
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				ev := Event{Paths: make([]string, 0, len(pending))}
				for p := range pending {
					ev.Paths = append(ev.Paths, p)
				}
				pending = make(map[string]bool)
				select {
				case ch <- ev:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore returns true for events that should not trigger a reload.
func shouldIgnore(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return true
	}

	base := filepath.Base(ev.Name)

	// Editor swap/temp files.
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") ||
		strings.HasSuffix(base, ".lock") {
		return true
	}
	return false
}
