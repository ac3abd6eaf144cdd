package core

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// EventStore owns the canonical event list. All other components
// receive snapshots or derived views and must not mutate events in
// place.
//
// Lookup misses on Edit/Remove are silent no-ops: callers are trusted
// to pass ids obtained from prior store responses. The store does not
// validate field contents either; validation belongs to the input
// boundary (NewDraft), not here.
type EventStore struct {
	mu     sync.RWMutex
	repo   Repository
	events []Event
	opts   *options
}

// NewEventStore creates an EventStore backed by repo. The store is
// empty until Load is called.
func NewEventStore(repo Repository, opts ...Option) *EventStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &EventStore{repo: repo, opts: o}
}

// Load populates the store from the repository. Corrupt or missing
// state falls back to the seed generator instead of failing hard; the
// seeded set is persisted so the next load finds a healthy vault.
func (s *EventStore) Load(ctx context.Context) error {
	events, err := s.repo.LoadEvents(ctx)
	if err != nil || len(events) == 0 {
		if err != nil {
			s.opts.logger.Warn("event state unreadable, falling back to seed data", "error", err)
		}
		if s.opts.seedEvents == nil {
			s.setEvents(nil)
			return nil
		}
		seeded := s.opts.seedEvents(s.opts.clock())
		s.setEvents(seeded)
		for _, ev := range seeded {
			s.persist(ctx, ev)
		}
		return nil
	}

	s.setEvents(events)
	return nil
}

// Add assigns a fresh unique id to the draft, appends the event and
// returns the created record. Ids are never reused, even after the
// record they named is deleted.
func (s *EventStore) Add(ctx context.Context, d Draft) Event {
	ev := d.event(uuid.NewString())

	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()

	s.persist(ctx, ev)
	return ev
}

// Edit replaces the event with a matching id. Unknown ids are ignored.
func (s *EventStore) Edit(ctx context.Context, ev Event) {
	s.mu.Lock()
	replaced := false
	for i := range s.events {
		if s.events[i].ID == ev.ID {
			s.events[i] = ev
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.persist(ctx, ev)
	}
}

// Remove deletes the event with the given id. Unknown ids are ignored.
func (s *EventStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if !removed {
		return
	}
	if err := s.repo.DeleteEvent(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		s.opts.logger.Error("failed to delete event", "id", id, "error", err)
	}
}

// Events returns a stable-ordered snapshot of the canonical list.
// Insertion order is preserved but carries no display meaning;
// consumers re-sort for presentation.
func (s *EventStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	for i := range out {
		if out[i].Recurrence != nil {
			rec := *out[i].Recurrence
			out[i].Recurrence = &rec
		}
	}
	return out
}

// Get returns the event with the given id, if present.
func (s *EventStore) Get(id string) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

// Len reports the number of events currently held.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

func (s *EventStore) setEvents(events []Event) {
	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
}

// persist writes one event through the repository. Persistence is
// fire-and-forget per mutation: failures are logged, never returned,
// and no transaction spans multiple mutations.
func (s *EventStore) persist(ctx context.Context, ev Event) {
	if err := s.repo.SaveEvent(ctx, ev); err != nil {
		s.opts.logger.Error("failed to persist event", "id", ev.ID, "error", err)
	}
}
