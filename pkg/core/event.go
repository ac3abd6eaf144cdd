// Event is the central entity of the domain.
package core

import (
	"strings"
	"time"
)

// EventType is the fixed category of an event. It drives color coding
// and is a filter dimension in the agenda engine.
type EventType string

const (
	TypeWork     EventType = "work"
	TypePersonal EventType = "personal"
	TypeFocus    EventType = "focus"
	TypeOther    EventType = "other"
)

// EventTypes lists every valid event type, in display order.
func EventTypes() []EventType {
	return []EventType{TypeWork, TypePersonal, TypeFocus, TypeOther}
}

// ValidEventType reports whether t is one of the known event types.
func ValidEventType(t EventType) bool {
	switch t {
	case TypeWork, TypePersonal, TypeFocus, TypeOther:
		return true
	}
	return false
}

// Frequency describes how often a recurring event repeats.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Recurrence holds the recurrence metadata attached to an event.
// It is stored and round-tripped but never expanded into concrete
// occurrences anywhere in the engine.
type Recurrence struct {
	Frequency Frequency `yaml:"frequency" json:"frequency"`
	Interval  int       `yaml:"interval" json:"interval"`
	EndDate   time.Time `yaml:"end_date,omitempty" json:"endDate,omitempty"`
}

// Event represents a scheduled calendar item with a time range and type.
// ID is assigned by the EventStore on creation and immutable thereafter.
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	Type        EventType
	Location    string
	Description string

	IsRecurring bool
	Recurrence  *Recurrence
}

// Draft is an event without an identity. The store turns a Draft into
// an Event by assigning a fresh ID.
type Draft struct {
	Title       string
	Start       time.Time
	End         time.Time
	Type        EventType
	Location    string
	Description string
	IsRecurring bool
	Recurrence  *Recurrence
}

// NewDraft is the strict constructor used at input boundaries (forms,
// CLI flags). It rejects structurally invalid payloads. The store itself
// stays permissive: callers that build a Draft by hand can still persist
// records the constructor would refuse.
func NewDraft(title string, start, end time.Time, typ EventType) (Draft, error) {
	if strings.TrimSpace(title) == "" {
		return Draft{}, ErrEmptyTitle
	}
	if !end.After(start) {
		return Draft{}, ErrEndBeforeStart
	}
	if !ValidEventType(typ) {
		return Draft{}, ErrUnknownType
	}
	return Draft{Title: title, Start: start, End: end, Type: typ}, nil
}

// event materializes the draft with an assigned id.
func (d Draft) event(id string) Event {
	return Event{
		ID:          id,
		Title:       d.Title,
		Start:       d.Start,
		End:         d.End,
		Type:        d.Type,
		Location:    d.Location,
		Description: d.Description,
		IsRecurring: d.IsRecurring,
		Recurrence:  d.Recurrence,
	}
}
