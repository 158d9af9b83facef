package registry

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/danieljhkim/tabgroups/internal/backend"
)

// Watcher reloads the collection when the sidecar file changes on disk,
// picking up edits made by another tool or a sync client.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching the active workspace's sidecar file. onReload, if
// non-nil, is invoked after each reload. Only the sidecar backend is
// watchable; the settings store has no change feed.
//
// The reload runs on the watcher's goroutine: embedders that mutate the
// registry concurrently must serialize with it.
func (r *Registry) Watch(onReload func()) (*Watcher, error) {
	if r.workspaceKey == "" {
		return nil, ErrNoWorkspace
	}
	if r.kind != backend.KindSidecar {
		return nil, fmt.Errorf("backend %s is not watchable", r.kind)
	}

	path := backend.SidecarPath(r.workspaceKey)
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: atomic writes replace the file, which would
	// drop a watch on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch sidecar directory: %w", err)
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				r.Reload()
				if onReload != nil {
					onReload()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				r.log.Warn("sidecar watch error", "error", err)
			}
		}
	}()
	return w, nil
}

// Stop ends the watch and waits for the watch goroutine to exit.
func (w *Watcher) Stop() error {
	err := w.fw.Close()
	<-w.done
	return err
}
