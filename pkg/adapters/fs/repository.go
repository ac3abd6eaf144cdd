package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/almanac/pkg/core"
)

const (
	eventsDir = "events"
	notesDir  = "notes"
	recordExt = ".md"
)

// Repository implements core.Repository on a vault directory: one
// Markdown file with YAML frontmatter per record, events under
// events/, notes under notes/. Writes are atomic
// (temp-file-and-rename), so a reader never observes a half-written
// record.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the vault repository.
type Config struct {
	Path      string
	AutoInit  bool // create the vault layout if missing
	MustExist bool // refuse to operate on a missing directory
	Logger    *slog.Logger

	// ErrorHandler receives runtime watcher failures that are
	// otherwise only logged.
	ErrorHandler func(error)
}

// NewRepository creates a new vault-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize prepares the vault directory layout.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", r.Path)
		}
	}

	for _, dir := range []string{eventsDir, notesDir} {
		path := filepath.Join(r.Path, dir)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}
		if !r.config.AutoInit {
			return fmt.Errorf("vault layout missing at %s (no %s/ directory); run init or enable auto-init", r.Path, dir)
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
	}
	return nil
}

// LoadEvents reads every persisted event. A vault that was never
// written yields an empty slice. Any file that fails to parse marks
// the whole collection as corrupt: the store falls back to seed data
// rather than silently dropping records.
func (r *Repository) LoadEvents(ctx context.Context) ([]core.Event, error) {
	var events []core.Event
	err := r.walkRecords(eventsDir, func(id string, f *os.File) error {
		ev, err := parseEvent(f)
		if err != nil {
			return fmt.Errorf("%w: event %s: %v", core.ErrCorrupt, id, err)
		}
		ev.ID = id
		events = append(events, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// SaveEvent persists one event, replacing any previous version.
func (r *Repository) SaveEvent(ctx context.Context, ev core.Event) error {
	if ev.ID == "" {
		return fmt.Errorf("event has no ID")
	}
	data, err := serializeEvent(ev)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	return r.writeRecord(eventsDir, ev.ID, data)
}

// DeleteEvent removes an event file by id.
func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	return r.deleteRecord(eventsDir, id)
}

// LoadNotes reads every persisted note, with the same corruption
// semantics as LoadEvents.
func (r *Repository) LoadNotes(ctx context.Context) ([]core.Note, error) {
	var notes []core.Note
	err := r.walkRecords(notesDir, func(id string, f *os.File) error {
		n, err := parseNote(f)
		if err != nil {
			return fmt.Errorf("%w: note %s: %v", core.ErrCorrupt, id, err)
		}
		n.ID = id
		notes = append(notes, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveNote persists one note, replacing any previous version.
func (r *Repository) SaveNote(ctx context.Context, n core.Note) error {
	if n.ID == "" {
		return fmt.Errorf("note has no ID")
	}
	data, err := serializeNote(n)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}
	return r.writeRecord(notesDir, n.ID, data)
}

// DeleteNote removes a note file by id.
func (r *Repository) DeleteNote(ctx context.Context, id string) error {
	return r.deleteRecord(notesDir, id)
}

func (r *Repository) walkRecords(dir string, visit func(id string, f *os.File) error) error {
	root := filepath.Join(r.Path, dir)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != recordExt {
			return nil
		}
		if strings.HasPrefix(d.Name(), TempFilePrefix) {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		return visit(recordID(path), f)
	})
}

func (r *Repository) writeRecord(dir, id string, data []byte) error {
	return writeRecordFile(filepath.Join(r.Path, dir, id+recordExt), data)
}

func (r *Repository) deleteRecord(dir, id string) error {
	fullPath := filepath.Join(r.Path, dir, id+recordExt)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return core.ErrNotFound
		}
		return err
	}
	return nil
}

// recordID derives the record id from a vault file path
// (events/<id>.md -> <id>).
func recordID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, recordExt)
}
