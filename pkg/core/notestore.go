package core

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// NoteStore owns the canonical note list. It mirrors the EventStore
// contract: uuid ids, silent no-ops on unknown ids, fire-and-forget
// persistence, seed fallback on empty or corrupt state.
type NoteStore struct {
	mu    sync.RWMutex
	repo  Repository
	notes []Note
	opts  *options
}

// NewNoteStore creates a NoteStore backed by repo.
func NewNoteStore(repo Repository, opts ...Option) *NoteStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &NoteStore{repo: repo, opts: o}
}

// Load populates the store from the repository, seeding on failure.
func (s *NoteStore) Load(ctx context.Context) error {
	notes, err := s.repo.LoadNotes(ctx)
	if err != nil || len(notes) == 0 {
		if err != nil {
			s.opts.logger.Warn("note state unreadable, falling back to seed data", "error", err)
		}
		if s.opts.seedNotes == nil {
			s.setNotes(nil)
			return nil
		}
		seeded := s.opts.seedNotes(s.opts.clock())
		s.setNotes(seeded)
		for _, n := range seeded {
			s.persist(ctx, n)
		}
		return nil
	}

	s.setNotes(notes)
	return nil
}

// Add creates a note from the draft: fresh id, created/updated stamps,
// category color resolved when the draft names none.
func (s *NoteStore) Add(ctx context.Context, d NoteDraft) Note {
	now := s.opts.clock()
	n := Note{
		ID:        uuid.NewString(),
		Title:     d.Title,
		Content:   d.Content,
		Category:  d.Category,
		Color:     d.Color,
		Pinned:    d.Pinned,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      append([]string(nil), d.Tags...),
	}
	if n.Color == "" {
		n.Color = CategoryColor(n.Category)
	}

	s.mu.Lock()
	s.notes = append(s.notes, n)
	s.mu.Unlock()

	s.persist(ctx, n)
	return n
}

// Edit replaces the note with a matching id, refreshing UpdatedAt.
// Unknown ids are ignored.
func (s *NoteStore) Edit(ctx context.Context, n Note) {
	n.UpdatedAt = s.opts.clock()

	s.mu.Lock()
	replaced := false
	for i := range s.notes {
		if s.notes[i].ID == n.ID {
			n.CreatedAt = s.notes[i].CreatedAt
			s.notes[i] = n
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.persist(ctx, n)
	}
}

// TogglePinned flips the pinned flag of the note with the given id.
func (s *NoteStore) TogglePinned(ctx context.Context, id string) {
	s.mu.Lock()
	var toggled *Note
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Pinned = !s.notes[i].Pinned
			s.notes[i].UpdatedAt = s.opts.clock()
			n := s.notes[i]
			toggled = &n
			break
		}
	}
	s.mu.Unlock()

	if toggled != nil {
		s.persist(ctx, *toggled)
	}
}

// Remove deletes the note with the given id. Unknown ids are ignored.
func (s *NoteStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if !removed {
		return
	}
	if err := s.repo.DeleteNote(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		s.opts.logger.Error("failed to delete note", "id", id, "error", err)
	}
}

// Notes returns a snapshot of the canonical list.
func (s *NoteStore) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	for i := range out {
		out[i].Tags = append([]string(nil), out[i].Tags...)
	}
	return out
}

// Get returns the note with the given id, if present.
func (s *NoteStore) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

func (s *NoteStore) setNotes(notes []Note) {
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
}

func (s *NoteStore) persist(ctx context.Context, n Note) {
	if err := s.repo.SaveNote(ctx, n); err != nil {
		s.opts.logger.Error("failed to persist note", "id", n.ID, "error", err)
	}
}
