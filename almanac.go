package almanac

import (
	"log/slog"
	"time"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/core"
)

// --- Types ---

// Planner bundles the event and note stores over one vault.
type Planner = platform.Planner

// --- Configuration ---

// Option defines a functional option for configuring almanac.
type Option = platform.Option

// WithAutoInit enables automatic creation of the vault layout.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the stores and the vault.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithSeed controls whether empty or corrupt storage is populated with
// generated demo data.
func WithSeed(enabled bool) Option {
	return platform.WithSeed(enabled)
}

// WithClock overrides the time source used for note timestamps, seed
// generation and relative date filters.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithWatcherErrorHandler registers a callback to handle errors
// occurring during the vault watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a Planner over the vault at path and loads both stores.
// An empty or corrupt vault is seeded with demo data unless
// WithSeed(false) is given.
func New(path string, opts ...Option) (*Planner, error) {
	return platform.New(path, opts...)
}

// Init initializes a vault repository explicitly, without loading
// stores.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Utils ---

// FindVaultRoot recursively looks upwards for a vault root indicator.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
