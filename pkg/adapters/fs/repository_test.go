package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/core"
)

// setupRepo creates an initialized vault repository in a temp dir.
func setupRepo(t *testing.T, opts ...func(*fs.Config)) (*fs.Repository, string) {
	t.Helper()

	tmpDir := t.TempDir()
	vaultPath := filepath.Join(tmpDir, "vault")

	cfg := fs.Config{
		Path:      vaultPath,
		AutoInit:  true,
		MustExist: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	repo := fs.NewRepository(cfg)
	return repo, vaultPath
}

func sampleEvent(id string) core.Event {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.FixedZone("CET", 3600))
	return core.Event{
		ID:          id,
		Title:       "Sprint Planning",
		Start:       start,
		End:         start.Add(90 * time.Minute),
		Type:        core.TypeWork,
		Location:    "Room 4",
		Description: "Bring the backlog.\n\nSecond paragraph.",
	}
}

func TestInitialize(t *testing.T) {
	t.Run("creates the collection layout", func(t *testing.T) {
		repo, path := setupRepo(t)

		if err := repo.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		for _, dir := range []string{"events", "notes"} {
			info, err := os.Stat(filepath.Join(path, dir))
			if err != nil || !info.IsDir() {
				t.Errorf("expected %s/ directory, err=%v", dir, err)
			}
		}
	})

	t.Run("fails if MustExist and missing", func(t *testing.T) {
		repo, _ := setupRepo(t, func(c *fs.Config) {
			c.MustExist = true
			c.AutoInit = false
		})
		if err := repo.Initialize(context.Background()); err == nil {
			t.Error("expected an error for a missing vault")
		}
	})

	t.Run("without AutoInit a missing layout is an error", func(t *testing.T) {
		repo, path := setupRepo(t, func(c *fs.Config) {
			c.AutoInit = false
		})
		if err := os.MkdirAll(path, 0755); err != nil {
			t.Fatal(err)
		}

		if err := repo.Initialize(context.Background()); err == nil {
			t.Error("expected an error for a missing layout")
		}
		if _, err := os.Stat(filepath.Join(path, "events")); !os.IsNotExist(err) {
			t.Error("layout must not be created when AutoInit is off")
		}
	})

	t.Run("without AutoInit an existing layout passes", func(t *testing.T) {
		repo, path := setupRepo(t, func(c *fs.Config) {
			c.AutoInit = false
		})
		for _, dir := range []string{"events", "notes"} {
			if err := os.MkdirAll(filepath.Join(path, dir), 0755); err != nil {
				t.Fatal(err)
			}
		}

		if err := repo.Initialize(context.Background()); err != nil {
			t.Errorf("Initialize failed on an existing layout: %v", err)
		}
	})

	t.Run("fails if vault path is a file", func(t *testing.T) {
		tmpDir := t.TempDir()
		file := filepath.Join(tmpDir, "not-a-dir")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		repo := fs.NewRepository(fs.Config{Path: file, MustExist: true})
		if err := repo.Initialize(context.Background()); err == nil {
			t.Error("expected an error for a file path")
		}
	})
}

func TestEventRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	if err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	want := sampleEvent("ev-1")
	want.IsRecurring = true
	want.Recurrence = &core.Recurrence{
		Frequency: core.Weekly,
		Interval:  2,
		EndDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := repo.SaveEvent(ctx, want); err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}

	events, err := repo.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got := events[0]
	if got.ID != want.ID || got.Title != want.Title {
		t.Errorf("identity mismatch: %+v", got)
	}
	if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Errorf("timestamps did not round-trip: got %v-%v want %v-%v", got.Start, got.End, want.Start, want.End)
	}
	if got.Description != want.Description {
		t.Errorf("description mismatch: %q", got.Description)
	}
	if got.Recurrence == nil {
		t.Fatal("recurrence dropped")
	}
	if got.Recurrence.Frequency != core.Weekly || got.Recurrence.Interval != 2 {
		t.Errorf("recurrence mismatch: %+v", got.Recurrence)
	}
	if !got.Recurrence.EndDate.Equal(want.Recurrence.EndDate) {
		t.Errorf("recurrence end date mismatch: %v", got.Recurrence.EndDate)
	}
}

func TestNoteRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	if err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC)
	want := core.Note{
		ID:        "note-1",
		Title:     "Reading List",
		Content:   "- one\n- two\n",
		Category:  "Ideas",
		Color:     "#10b981",
		Pinned:    true,
		CreatedAt: now,
		UpdatedAt: now.Add(time.Hour),
		Tags:      []string{"books", "later"},
	}

	if err := repo.SaveNote(ctx, want); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	notes, err := repo.LoadNotes(ctx)
	if err != nil {
		t.Fatalf("LoadNotes failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}

	got := notes[0]
	if got.ID != want.ID || got.Title != want.Title || got.Content != want.Content {
		t.Errorf("note mismatch: %+v", got)
	}
	if !got.Pinned || got.Color != want.Color || got.Category != want.Category {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("timestamps did not round-trip: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "books" {
		t.Errorf("tags mismatch: %v", got.Tags)
	}
}

func TestLoadEvents_Corrupt(t *testing.T) {
	repo, path := setupRepo(t)
	ctx := context.Background()
	if err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	t.Run("missing frontmatter", func(t *testing.T) {
		broken := filepath.Join(path, "events", "broken.md")
		if err := os.WriteFile(broken, []byte("just text, no frontmatter"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := repo.LoadEvents(ctx)
		if !errors.Is(err, core.ErrCorrupt) {
			t.Errorf("expected ErrCorrupt, got %v", err)
		}
		os.Remove(broken)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		broken := filepath.Join(path, "events", "badtime.md")
		content := "---\ntitle: X\nstart: yesterday\nend: tomorrow\ntype: work\n---\n"
		if err := os.WriteFile(broken, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := repo.LoadEvents(ctx)
		if !errors.Is(err, core.ErrCorrupt) {
			t.Errorf("expected ErrCorrupt, got %v", err)
		}
		os.Remove(broken)
	})

	t.Run("one bad file poisons the collection", func(t *testing.T) {
		if err := repo.SaveEvent(ctx, sampleEvent("good")); err != nil {
			t.Fatal(err)
		}
		broken := filepath.Join(path, "events", "broken.md")
		if err := os.WriteFile(broken, []byte("nope"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := repo.LoadEvents(ctx); !errors.Is(err, core.ErrCorrupt) {
			t.Errorf("expected ErrCorrupt, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	if err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	t.Run("removes the record file", func(t *testing.T) {
		if err := repo.SaveEvent(ctx, sampleEvent("gone")); err != nil {
			t.Fatal(err)
		}
		if err := repo.DeleteEvent(ctx, "gone"); err != nil {
			t.Fatalf("DeleteEvent failed: %v", err)
		}
		events, err := repo.LoadEvents(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(events) != 0 {
			t.Errorf("expected empty collection, got %d", len(events))
		}
	})

	t.Run("missing id returns ErrNotFound", func(t *testing.T) {
		if err := repo.DeleteEvent(ctx, "never-existed"); !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := repo.DeleteNote(ctx, "never-existed"); !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestWalkIgnoresStrayFiles(t *testing.T) {
	repo, path := setupRepo(t)
	ctx := context.Background()
	if err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveEvent(ctx, sampleEvent("only")); err != nil {
		t.Fatal(err)
	}

	// Leftover temp files and non-record files must not poison a load.
	stray := []string{
		fs.TempFilePrefix + "half-written.md",
		"readme.txt",
		".hidden",
	}
	for _, name := range stray {
		if err := os.WriteFile(filepath.Join(path, "events", name), []byte("garbage"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	events, err := repo.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].ID != "only" {
		t.Errorf("expected only the real record, got %+v", events)
	}
}

func TestLoadEmptyVault(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	if err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	events, err := repo.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("LoadEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}

	notes, err := repo.LoadNotes(ctx)
	if err != nil {
		t.Fatalf("LoadNotes failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes, got %d", len(notes))
	}
}
