package fs_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/core"
)

func setupWatch(t *testing.T, pattern string) (*fs.Repository, <-chan core.Change, context.Context, context.CancelFunc) {
	t.Helper()

	repo, _ := setupRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	require.NoError(t, repo.Initialize(ctx))

	changes, err := repo.Watch(ctx, pattern)
	require.NoError(t, err, "Watch should be supported")
	require.NotNil(t, changes)

	// Give the watcher goroutine a moment to start.
	time.Sleep(100 * time.Millisecond)

	return repo, changes, ctx, cancel
}

func TestWatch_RecordCreation(t *testing.T) {
	repo, changes, ctx, cancel := setupWatch(t, "**")
	defer cancel()

	require.NoError(t, repo.SaveEvent(ctx, sampleEvent("watched")))

	select {
	case c := <-changes:
		assert.Equal(t, "events/watched", c.ID)
		// Atomic rename surfaces as CREATE on most platforms.
		assert.Contains(t, []core.ChangeType{core.ChangeCreate, core.ChangeModify}, c.Type)
		assert.NotZero(t, c.Timestamp)
	case <-ctx.Done():
		t.Fatal("timed out waiting for change")
	}
}

func TestWatch_RecordDeletion(t *testing.T) {
	repo, changes, ctx, cancel := setupWatch(t, "**")
	defer cancel()

	require.NoError(t, repo.SaveEvent(ctx, sampleEvent("doomed")))
	drainOne(t, ctx, changes)

	require.NoError(t, repo.DeleteEvent(ctx, "doomed"))

	select {
	case c := <-changes:
		assert.Equal(t, core.ChangeDelete, c.Type)
		assert.Equal(t, "events/doomed", c.ID)
	case <-ctx.Done():
		t.Fatal("timed out waiting for delete change")
	}
}

func TestWatch_PatternFilter(t *testing.T) {
	repo, changes, ctx, cancel := setupWatch(t, "notes/*")
	defer cancel()

	// An event change must not pass a notes-only pattern.
	require.NoError(t, repo.SaveEvent(ctx, sampleEvent("invisible")))

	now := time.Now()
	require.NoError(t, repo.SaveNote(ctx, core.Note{
		ID: "visible", Title: "n", CreatedAt: now, UpdatedAt: now,
	}))

	select {
	case c := <-changes:
		assert.Equal(t, "notes/visible", c.ID)
	case <-ctx.Done():
		t.Fatal("timed out waiting for note change")
	}
}

func TestWatch_InvalidPattern(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Initialize(ctx))

	_, err := repo.Watch(ctx, "events/[")
	assert.Error(t, err)
}

func TestWatch_ChannelClosesOnCancel(t *testing.T) {
	_, changes, _, cancel := setupWatch(t, "**")
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, open := <-changes:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("channel did not close after cancel")
		}
	}
}

// TestWatch_ShutdownDuringBurst cancels the watcher while debounce
// timers for a burst of saves are still pending. A late timer must
// settle quietly instead of sending on the already-closed channel and
// crashing its goroutine.
func TestWatch_ShutdownDuringBurst(t *testing.T) {
	for i := 0; i < 20; i++ {
		repo, changes, ctx, cancel := setupWatch(t, "**")

		for j := 0; j < 25; j++ {
			require.NoError(t, repo.SaveEvent(ctx, sampleEvent(fmt.Sprintf("burst-%d-%d", i, j))))
		}
		cancel()

		deadline := time.After(3 * time.Second)
	drain:
		for {
			select {
			case _, open := <-changes:
				if !open {
					break drain
				}
			case <-deadline:
				t.Fatal("channel did not close after cancel")
			}
		}
	}
}

func drainOne(t *testing.T, ctx context.Context, changes <-chan core.Change) {
	t.Helper()
	select {
	case <-changes:
	case <-ctx.Done():
		t.Fatal("timed out draining change")
	}
}
