package platform

import (
	"context"
	"log/slog"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/seed"
)

// Planner bundles the two domain stores over one vault.
type Planner struct {
	Events *core.EventStore
	Notes  *core.NoteStore

	repo core.Repository
}

// Repository exposes the storage adapter backing the planner, e.g. to
// start a watch on a Watchable vault.
func (p *Planner) Repository() core.Repository {
	return p.repo
}

// Init initializes the storage adapter for a vault path and returns
// the configured core.Repository.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	repo := fs.NewRepository(fs.Config{
		Path:         path,
		AutoInit:     o.autoInit,
		MustExist:    o.mustExist,
		Logger:       o.logger,
		ErrorHandler: o.errHandler,
	})

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// New creates a Planner over the vault at path and loads both stores.
func New(path string, opts ...Option) (*Planner, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storeOpts := []core.Option{core.WithClock(o.clock)}
	if o.logger != nil {
		storeOpts = append(storeOpts, core.WithLogger(o.logger))
	} else {
		storeOpts = append(storeOpts, core.WithLogger(slog.New(slog.DiscardHandler)))
	}
	if o.seed {
		storeOpts = append(storeOpts,
			core.WithEventSeed(seed.Generate),
			core.WithNoteSeed(seed.GenerateNotes),
		)
	}

	p := &Planner{
		Events: core.NewEventStore(repo, storeOpts...),
		Notes:  core.NewNoteStore(repo, storeOpts...),
		repo:   repo,
	}

	ctx := context.Background()
	if err := p.Events.Load(ctx); err != nil {
		return nil, err
	}
	if err := p.Notes.Load(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
