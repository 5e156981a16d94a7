package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchFiles reloads the pipeline when an input file changes. It watches
// the parent directories rather than the files themselves so editors that
// save by rename keep triggering reloads.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	files := make(map[string]bool, len(s.opts.Files))
	dirs := make(map[string]bool)
	for _, f := range s.opts.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			s.logger.Error("failed to watch directory", "dir", dir, "error", err)
		}
	}

	// Reloads run on this goroutine, so none can outlive ctx.
	debounce := time.NewTimer(reloadDebounce)
	debounce.Stop()
	defer debounce.Stop()
	var changed string

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !files[name] {
				continue
			}
			changed = event.Name
			debounce.Reset(reloadDebounce)

		case <-debounce.C:
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Info("input changed, reloading", "file", changed)
			if err := s.Reload(ctx); err != nil {
				s.logger.Error("reload failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}
