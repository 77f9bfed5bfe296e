package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher emits the contents of a deck file each time it is written.
type FileWatcher struct {
	path string
}

// NewFileWatcher creates a FileWatcher for path.
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{path: path}
}

// Path returns the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Watch emits the current file contents, then the contents after every
// write or create. The parent directory is watched so editors that replace
// the file by rename are still followed.
func (w *FileWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if _, err := os.Stat(w.path); err != nil {
		return nil, fmt.Errorf("failed to stat deck %s: %w", w.path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	target := filepath.Clean(w.path)
	out := make(chan []byte)

	go func() {
		defer close(out)
		defer watcher.Close()

		if data, err := os.ReadFile(w.path); err == nil {
			select {
			case out <- data:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				data, err := os.ReadFile(w.path)
				if err != nil {
					continue
				}

				select {
				case out <- data:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}
