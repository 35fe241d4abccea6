package dsl

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is how long Watch waits for a burst of events on the
// file to settle before reporting a change.
const DefaultWatchDebounce = 300 * time.Millisecond

// Watch reports path on the returned channel whenever the file is written,
// created, removed or renamed. The parent directory is watched so editors that
// replace the file on save are followed. Events are debounced, and changes
// arriving faster than the consumer reads them are coalesced. The channel is
// closed when ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan string, error) {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()

		timer := time.NewTimer(debounce)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !relevant(event) {
					continue
				}
				timer.Reset(debounce)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-timer.C:
				select {
				case ch <- path:
				default:
				}
			}
		}
	}()
	return ch, nil
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
