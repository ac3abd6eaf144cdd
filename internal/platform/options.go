package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

// options holds the internal configuration for the almanac planner.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	clock      func() time.Time
	autoInit   bool
	mustExist  bool
	seed       bool
	errHandler func(error)
}

// Option defines a functional option for configuring almanac.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		clock: time.Now,
		seed:  true,
	}
}

// WithAutoInit enables automatic creation of the vault layout.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithLogger sets the logger for the stores and the vault.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter.
// If provided, the default vault adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithSeed controls whether empty or corrupt storage is populated with
// generated demo data. Enabled by default.
func WithSeed(enabled bool) Option {
	return func(o *options) {
		o.seed = enabled
	}
}

// WithClock overrides the time source (tests, relative date filters).
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring
// during the vault watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errHandler = fn
	}
}
