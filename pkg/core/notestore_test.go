package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

func TestNoteStore_Add(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	repo := NewMockRepository()
	store := core.NewNoteStore(repo, core.WithClock(func() time.Time { return now }))
	ctx := context.TODO()

	t.Run("stamps creation time", func(t *testing.T) {
		n := store.Add(ctx, core.NoteDraft{Title: "Groceries", Category: "Tasks"})
		if !n.CreatedAt.Equal(now) || !n.UpdatedAt.Equal(now) {
			t.Errorf("expected both stamps %v, got created=%v updated=%v", now, n.CreatedAt, n.UpdatedAt)
		}
		if n.ID == "" {
			t.Error("expected an assigned id")
		}
	})

	t.Run("resolves category color", func(t *testing.T) {
		n := store.Add(ctx, core.NoteDraft{Title: "Sketch", Category: "Ideas"})
		if n.Color != core.NoteCategories["Ideas"] {
			t.Errorf("expected Ideas color, got %q", n.Color)
		}
	})

	t.Run("explicit color wins", func(t *testing.T) {
		n := store.Add(ctx, core.NoteDraft{Title: "Custom", Category: "Ideas", Color: "#112233"})
		if n.Color != "#112233" {
			t.Errorf("expected explicit color, got %q", n.Color)
		}
	})

	t.Run("unknown category gets the default color", func(t *testing.T) {
		n := store.Add(ctx, core.NoteDraft{Title: "Misc", Category: "Journal"})
		if n.Color != core.DefaultNoteColor {
			t.Errorf("expected default color, got %q", n.Color)
		}
	})
}

func TestNoteStore_Edit(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	store := core.NewNoteStore(NewMockRepository(), core.WithClock(func() time.Time { return now }))
	ctx := context.TODO()

	n := store.Add(ctx, core.NoteDraft{Title: "Draft", Category: "Work"})

	now = now.Add(2 * time.Hour)
	n.Content = "fleshed out"
	store.Edit(ctx, n)

	got, ok := store.Get(n.ID)
	if !ok {
		t.Fatal("note disappeared after edit")
	}
	if !got.CreatedAt.Equal(n.CreatedAt) {
		t.Errorf("CreatedAt must survive edits: %v != %v", got.CreatedAt, n.CreatedAt)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt not refreshed: got %v want %v", got.UpdatedAt, now)
	}

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		ghost := got
		ghost.ID = "no-such-id"
		store.Edit(ctx, ghost)
		if _, ok := store.Get("no-such-id"); ok {
			t.Error("editing an unknown id must not insert it")
		}
	})
}

func TestNoteStore_TogglePinned(t *testing.T) {
	store := core.NewNoteStore(NewMockRepository())
	ctx := context.TODO()

	n := store.Add(ctx, core.NoteDraft{Title: "Pin me"})
	if n.Pinned {
		t.Fatal("notes start unpinned")
	}

	store.TogglePinned(ctx, n.ID)
	if got, _ := store.Get(n.ID); !got.Pinned {
		t.Error("expected pinned after first toggle")
	}

	store.TogglePinned(ctx, n.ID)
	if got, _ := store.Get(n.ID); got.Pinned {
		t.Error("expected unpinned after second toggle")
	}

	// Toggling a missing id must not panic or create records.
	store.TogglePinned(ctx, "no-such-id")
	if _, ok := store.Get("no-such-id"); ok {
		t.Error("toggle must not create notes")
	}
}

func TestNoteStore_SnapshotIsolation(t *testing.T) {
	store := core.NewNoteStore(NewMockRepository())
	ctx := context.TODO()

	n := store.Add(ctx, core.NoteDraft{Title: "Tagged", Tags: []string{"a", "b"}})

	snap := store.Notes()
	snap[0].Tags[0] = "mutated"

	got, _ := store.Get(n.ID)
	if got.Tags[0] != "a" {
		t.Errorf("tag mutation leaked into the store: %q", got.Tags[0])
	}
}

func TestNoteStore_Load(t *testing.T) {
	seed := func(ref time.Time) []core.Note {
		return []core.Note{{ID: "seed-note", Title: "Welcome", CreatedAt: ref, UpdatedAt: ref}}
	}

	t.Run("seeds an empty repository", func(t *testing.T) {
		repo := NewMockRepository()
		store := core.NewNoteStore(repo, core.WithNoteSeed(seed))
		if err := store.Load(context.TODO()); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if _, ok := store.Get("seed-note"); !ok {
			t.Error("expected seeded note")
		}
		if _, ok := repo.notes["seed-note"]; !ok {
			t.Error("seeded note not persisted back")
		}
	})

	t.Run("keeps healthy state", func(t *testing.T) {
		repo := NewMockRepository()
		repo.notes["keep"] = core.Note{ID: "keep", Title: "Existing"}
		store := core.NewNoteStore(repo, core.WithNoteSeed(seed))
		if err := store.Load(context.TODO()); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if _, ok := store.Get("keep"); !ok {
			t.Error("existing note replaced by seed")
		}
	})
}
