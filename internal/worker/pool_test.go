package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllResolvesEveryArtist(t *testing.T) {
	var mu sync.Mutex
	calls := map[string]int{}

	fetch := func(_ context.Context, id string) ([]string, error) {
		mu.Lock()
		calls[id]++
		mu.Unlock()
		return []string{"genre-" + id}, nil
	}

	pool := NewPool(fetch, 3, zerolog.Nop())
	got, err := pool.FetchAll(context.Background(), []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	assert.Len(t, got, 4)
	assert.Equal(t, []string{"genre-a"}, got["a"])
	for id, n := range calls {
		assert.Equal(t, 1, n, "artist %s fetched more than once", id)
	}
}

func TestFetchAllToleratesLookupFailure(t *testing.T) {
	fetch := func(_ context.Context, id string) ([]string, error) {
		if id == "bad" {
			return nil, errors.New("boom")
		}
		return []string{"ok"}, nil
	}

	pool := NewPool(fetch, 2, zerolog.Nop())
	got, err := pool.FetchAll(context.Background(), []string{"good", "bad"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ok"}, got["good"])
	assert.Empty(t, got["bad"], "failed lookup maps to no tags")
}

func TestFetchAllStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetch := func(ctx context.Context, _ string) ([]string, error) {
		return nil, ctx.Err()
	}

	pool := NewPool(fetch, 1, zerolog.Nop())
	_, err := pool.FetchAll(ctx, []string{"a", "b", "c"})
	require.ErrorIs(t, err, context.Canceled)
}
