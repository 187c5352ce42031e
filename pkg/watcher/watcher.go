// Package watcher watches a theme file for edits and reports settled
// changes, so a running program can reload its alert theme without
// restarting. Rapid write bursts from editors are coalesced by a
// debouncer before the callback fires.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options configure Watch.
type Options struct {
	// Debounce is how long edits must settle before the change
	// callback fires. Zero means DefaultDebounceDuration.
	Debounce time.Duration

	// OnError receives non-fatal watch errors. May be nil.
	OnError func(error)
}

// Watch watches the file at path until ctx is cancelled, invoking
// onChange after each settled burst of writes. The parent directory is
// watched rather than the file itself, so editors that replace the
// file by rename-over keep being observed.
func Watch(ctx context.Context, path string, onChange func(), opts Options) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %q: %w", filepath.Dir(abs), err)
	}

	debouncer := NewDebouncer(opts.Debounce)
	defer debouncer.Cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debouncer.Trigger(onChange)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if opts.OnError != nil {
				opts.OnError(err)
			}
		}
	}
}
