// Package watcher rebuilds the index whenever the content tree changes.
package watcher

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for changes to settle before
// rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a content root and its post directories.
type Watcher struct {
	root     string
	debounce time.Duration
	rebuild  func() error
}

// New creates a Watcher that calls rebuild after changes under root settle.
func New(root string, debounce time.Duration, rebuild func() error) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{root: root, debounce: debounce, rebuild: rebuild}
}

// Run blocks until ctx is done or the underlying watcher fails. Rebuild
// errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("watch %s: %w", w.root, err)
	}
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", w.root, err)
	}
	dirs := 1
	for _, e := range entries {
		dir := filepath.Join(w.root, e.Name())
		// Stat follows symlinks, matching how the scanner picks up linked posts.
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := fw.Add(dir); err != nil {
			log.Printf("Warning: could not watch %s: %v", e.Name(), err)
			continue
		}
		dirs++
	}
	log.Printf("Watching %d directories in %s", dirs, w.root)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	trigger := make(chan struct{}, 1)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case trigger <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			// New post directories directly under the root need their own watch.
			if event.Has(fsnotify.Create) && filepath.Dir(event.Name) == filepath.Clean(w.root) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fw.Add(event.Name); err != nil {
						log.Printf("Warning: could not watch %s: %v", event.Name, err)
					}
				}
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			schedule()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Warning: watcher error: %v", err)

		case <-trigger:
			log.Printf("Change detected, rebuilding index")
			if err := w.rebuild(); err != nil {
				log.Printf("Error: rebuild failed: %v", err)
			}
		}
	}
}
