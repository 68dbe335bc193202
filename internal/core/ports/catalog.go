package ports

import (
	"context"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
)

// CatalogProvider supplies fully materialized tracks for a playlist. The
// core never talks to the catalog while building; fetching completes before
// the build starts.
type CatalogProvider interface {
	PlaylistTracks(ctx context.Context, playlistID string) ([]domain.Track, error)
}
