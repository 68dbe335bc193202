// Package worker provides bounded concurrent prefetching of per-artist data.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// FetchFunc looks up the genre tags for one artist ID.
type FetchFunc func(ctx context.Context, artistID string) ([]string, error)

// Pool fans artist lookups out over a fixed number of workers. All fetching
// finishes before the result map is returned, so the ordering core never
// waits on the catalog.
type Pool struct {
	fetch   FetchFunc
	workers int
	logger  zerolog.Logger
}

// NewPool creates a pool with the given worker count.
func NewPool(fetch FetchFunc, workers int, logger zerolog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{fetch: fetch, workers: workers, logger: logger}
}

// FetchAll resolves genre tags for every artist ID. Failed lookups are
// logged and mapped to an empty tag list; a canceled context aborts the
// remaining work and returns the context error.
func (p *Pool) FetchAll(ctx context.Context, artistIDs []string) (map[string][]string, error) {
	jobs := make(chan string)
	results := make(map[string][]string, len(artistIDs))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				genres, err := p.fetch(ctx, id)
				if err != nil {
					p.logger.Warn().Err(err).Str("artist_id", id).Msg("artist genre lookup failed")
					genres = nil
				}
				mu.Lock()
				results[id] = genres
				mu.Unlock()
			}
		}()
	}

	var ctxErr error
feed:
	for _, id := range artistIDs {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		select {
		case jobs <- id:
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	return results, nil
}
