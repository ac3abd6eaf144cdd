package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/almanac/pkg/core"
)

type vaultSource struct {
	changes <-chan core.Change
	out     chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits vault changes.
// It bridges the typed Change channel to the generic lifecycle Event
// interface.
func NewSource(changes <-chan core.Change) lifecycle.Source {
	return &vaultSource{
		changes: changes,
		out:     make(chan lifecycle.Event),
	}
}

func (s *vaultSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *vaultSource) Start(ctx context.Context) error {
	// core.Change implements lifecycle.Event (has String()).
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case c, ok := <-s.changes:
				if !ok {
					return nil
				}
				select {
				case s.out <- c:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
