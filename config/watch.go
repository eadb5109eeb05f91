package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet after an event
// before it is reloaded. Editors emit a burst of events for one save.
const reloadDebounce = 100 * time.Millisecond

// ErrEmptyTuning is returned for a tuning file with no content, as seen
// between an editor truncating the file and writing it.
var ErrEmptyTuning = errors.New("empty tuning file")

// Watch reloads the tuning file whenever it changes and sends each valid
// result on out. Invalid or empty files are logged and skipped. The
// directory is watched rather than the file so atomic-rename saves are seen.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, out chan<- Tuning) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	quiet := time.NewTimer(reloadDebounce)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != abs {
				continue
			}
			quiet.Reset(reloadDebounce)
		case <-quiet.C:
			t, err := reload(abs)
			if err != nil {
				log.Printf("[config] Reload of %s rejected: %v", path, err)
				continue
			}
			log.Printf("[config] Reloaded tuning from %s", path)
			select {
			case out <- t:
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("[config] Watcher error: %v", err)
		}
	}
}

// reload is Load for a file being edited: blank content is rejected instead
// of parsing as all defaults.
func reload(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("read tuning %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Defaults(), ErrEmptyTuning
	}
	return Parse(data)
}
