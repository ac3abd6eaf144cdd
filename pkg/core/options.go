package core

import (
	"log/slog"
	"time"
)

// options holds the shared configuration for the domain stores.
type options struct {
	logger     *slog.Logger
	clock      func() time.Time
	seedEvents func(ref time.Time) []Event
	seedNotes  func(ref time.Time) []Note
}

// Option defines a functional option for configuring a store.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
		clock:  time.Now,
	}
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock overrides the time source. Used by the agenda engine's
// relative filters and by tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithEventSeed registers the generator used when persisted event state
// is empty or corrupt.
func WithEventSeed(fn func(ref time.Time) []Event) Option {
	return func(o *options) {
		o.seedEvents = fn
	}
}

// WithNoteSeed registers the generator used when persisted note state
// is empty or corrupt.
func WithNoteSeed(fn func(ref time.Time) []Note) Option {
	return func(o *options) {
		o.seedNotes = fn
	}
}
