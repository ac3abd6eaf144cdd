package core

import "context"

// Repository defines the contract for persisting events and notes.
// Adhering to this interface keeps the stores independent of the
// underlying storage mechanism (filesystem vault, memory, SQL, S3).
type Repository interface {
	// LoadEvents returns every persisted event. A vault that was never
	// written returns an empty slice and no error; unparseable state
	// returns an error wrapping ErrCorrupt.
	LoadEvents(ctx context.Context) ([]Event, error)

	// SaveEvent persists one event. It creates if not exists, or
	// replaces if it does.
	SaveEvent(ctx context.Context, ev Event) error

	// DeleteEvent removes an event by ID. Missing ids return ErrNotFound.
	DeleteEvent(ctx context.Context, id string) error

	// LoadNotes, SaveNote and DeleteNote mirror the event operations
	// for the note collection.
	LoadNotes(ctx context.Context) ([]Note, error)
	SaveNote(ctx context.Context, n Note) error
	DeleteNote(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready
	// (e.g. create the vault directory layout).
	Initialize(ctx context.Context) error
}

// ChangeType represents the kind of change observed in the vault.
type ChangeType string

const (
	ChangeCreate ChangeType = "CREATE"
	ChangeModify ChangeType = "MODIFY"
	ChangeDelete ChangeType = "DELETE"
)

// Change represents an externally observed mutation of a persisted
// record (e.g. the user editing a vault file in another program).
type Change struct {
	Type      ChangeType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and the lifecycle event contract).
func (c Change) String() string {
	return string(c.Type) + " " + c.ID
}

// Watchable defines an interface for repositories that can observe
// external changes to their storage.
type Watchable interface {
	// Watch emits a Change for every record matching pattern until ctx
	// is cancelled. Pattern is a doublestar glob over record ids.
	Watch(ctx context.Context, pattern string) (<-chan Change, error)
}
