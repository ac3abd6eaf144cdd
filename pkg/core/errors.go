package core

import "errors"

// Common errors.
var (
	// ErrCorrupt marks persisted state that could not be parsed back.
	// Stores recover from it by falling back to generated seed data.
	ErrCorrupt = errors.New("persisted state is corrupt")

	// ErrNotFound is returned by repositories for missing records.
	// Store-level edit/remove of an unknown id is a silent no-op and
	// never surfaces this error to callers.
	ErrNotFound = errors.New("record not found")

	// Boundary validation errors (strict constructors only).
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrEndBeforeStart = errors.New("end must be after start")
	ErrUnknownType    = errors.New("unknown event type")
)
