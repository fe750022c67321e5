package server

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcher triggers the reload callback when files under the served root
// change. Events are debounced so a burst of writes yields one reload.
type watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func()
	wg       sync.WaitGroup
}

func newWatcher(dir string, debounce time.Duration, onChange func()) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the root recursively, skipping hidden directories like .git
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if filepath.Base(path)[0] == '.' && path != dir {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &watcher{fsw: fsw, debounce: debounce, onChange: onChange}, nil
}

// Start spawns the event loop; Stop closes the watcher and waits for it.
func (w *watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

func (w *watcher) Stop() {
	if err := w.fsw.Close(); err != nil {
		slog.Warn("Failed to close file watcher", "error", err)
	}
	w.wg.Wait()
}

func (w *watcher) loop() {
	defer w.wg.Done()

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Ignore chmod events
			if event.Op&fsnotify.Chmod != 0 {
				continue
			}

			// Directories created after startup get watched too
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.fsw.Add(event.Name)
				}
			}

			if debounceTimer != nil {
				debounceTimer.Reset(w.debounce)
			} else {
				debounceTimer = time.AfterFunc(w.debounce, w.onChange)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
