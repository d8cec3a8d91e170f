// internal/defs/watch.go
package defs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the definitions file whenever it changes and hands each
// successfully validated library to onReload. Broken edits are logged and
// skipped. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onReload func(*Library)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			lib, err := LoadLibrary(path)
			if err != nil {
				slog.Warn("definitions reload failed", "path", path, "err", err)
				continue
			}
			onReload(lib)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("definitions watcher error", "err", err)
		}
	}
}
