package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"braces.dev/errtrace"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

var errWatchStdin = errors.New("--watch needs a filename")

// watchFile calls run after every burst of changes to filename until ctx
// is done. Failures of run are reported, not returned.
func watchFile(ctx context.Context, filename string, run func() error, status statusFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return errtrace.Wrap(err)
	}

	// Editors often replace the file instead of writing it,
	// so watch the directory and match on the name.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errtrace.Wrap(err)
	}

	status("watching %s\n", filename)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			status("warning: watch: %v\n", err)

		case <-debounce.C:
			if err := run(); err != nil {
				status("error: %v\n", err)
			}
		}
	}
}
