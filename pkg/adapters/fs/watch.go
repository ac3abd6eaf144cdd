package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/almanac/pkg/core"
)

const debounceInterval = 50 * time.Millisecond

// Watch observes external changes to the vault (e.g. the user editing
// record files in another program) and emits a Change per affected
// record. Pattern is a doublestar glob over record paths relative to
// the vault root, without extension (e.g. "events/*", "**").
//
// The channel closes when ctx is cancelled. Rapid bursts of writes to
// the same record are debounced into a single Change.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Change, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	for _, dir := range []string{eventsDir, notesDir} {
		if err := watcher.Add(filepath.Join(r.Path, dir)); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	changes := make(chan core.Change)
	debouncer := newDebouncer(debounceInterval)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer r.setWatcherActive(false)
		defer watcher.Close()
		// Note: debouncer cleanup is handled explicitly below, not via
		// defer, so in-flight timers are settled before the channel
		// closes.

		err := r.watchLoop(ctx, watcher, pattern, debouncer, changes)

		debouncer.stopAndWait(5 * time.Second)
		close(changes)
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watch loop failed", "error", err)
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(err)
		}
	}))

	return changes, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, d *debouncer, changes chan<- core.Change) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			r.processWatchEvent(ctx, event, pattern, d, changes)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
			if r.config.ErrorHandler != nil {
				r.config.ErrorHandler(wErr)
			}
		}
	}
}

func (r *Repository) processWatchEvent(ctx context.Context, event fsnotify.Event, pattern string, d *debouncer, changes chan<- core.Change) {
	r.config.Logger.Debug("event received", "name", event.Name)

	if r.shouldIgnore(event.Name, pattern) {
		return
	}

	cType := mapChangeType(event)
	if cType == "" {
		return
	}

	d.add(core.Change{
		Type:      cType,
		ID:        r.watchID(event.Name),
		Timestamp: time.Now().Unix(),
	}, func(c core.Change) {
		defer func() {
			// Recover from panic if channel was closed (watcher stopping)
			_ = recover()
		}()
		select {
		case changes <- c:
		case <-ctx.Done():
		}
	})
}

// shouldIgnore filters out temp files, non-record files and paths that
// do not match the watch pattern.
func (r *Repository) shouldIgnore(path, pattern string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	if filepath.Ext(path) != recordExt {
		return true
	}
	match, err := doublestar.Match(pattern, r.watchID(path))
	return err != nil || !match
}

// watchID maps a filesystem path to the record's watch id:
// the collection-qualified id without extension (events/<id>).
func (r *Repository) watchID(path string) string {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, recordExt)
}

func mapChangeType(event fsnotify.Event) core.ChangeType {
	switch {
	case event.Has(fsnotify.Create):
		return core.ChangeCreate
	case event.Has(fsnotify.Write):
		return core.ChangeModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.ChangeDelete
	default:
		return ""
	}
}
