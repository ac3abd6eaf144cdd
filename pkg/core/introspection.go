package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal store state for observability.
type StoreState struct {
	Records        int    `json:"records"`
	RepositoryType string `json:"repository_type"`
}

func repositoryType(repo Repository) string {
	if repo == nil {
		return "unknown"
	}
	if comp, ok := repo.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return "repository"
}

// State implements introspection.Introspectable.
func (s *EventStore) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Records:        len(s.events),
		RepositoryType: repositoryType(s.repo),
	}
}

// ComponentType implements introspection.Component.
func (s *EventStore) ComponentType() string {
	return "event-store"
}

// State implements introspection.Introspectable.
func (s *NoteStore) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Records:        len(s.notes),
		RepositoryType: repositoryType(s.repo),
	}
}

// ComponentType implements introspection.Component.
func (s *NoteStore) ComponentType() string {
	return "note-store"
}

var _ introspection.Introspectable = (*EventStore)(nil)
var _ introspection.Component = (*EventStore)(nil)
var _ introspection.Introspectable = (*NoteStore)(nil)
var _ introspection.Component = (*NoteStore)(nil)
