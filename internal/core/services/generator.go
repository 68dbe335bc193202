package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
	"github.com/harmoniq-labs/setlist/internal/core/ports"
)

// GenerateRequest describes one setlist build.
type GenerateRequest struct {
	PlaylistID string
	// OpenerHint selects the opener by substring match when non-empty.
	OpenerHint string
	// FallbackToRandom picks a random opener instead of failing when the
	// hint matches nothing. A missed hint is recoverable either way; this
	// just decides on the caller's behalf.
	FallbackToRandom bool
	MaxLength        int
}

// GenerateResult carries the built setlist, the tracks that were never
// placed, and where the export was written.
type GenerateResult struct {
	Setlist    *domain.Setlist
	Leftover   []domain.Track
	OutputPath string
	// HintMissed reports that the opener hint matched nothing and the
	// random fallback was used.
	HintMissed bool
}

// Generator coordinates catalog fetching, the ordering core, persistence and
// export into one build operation.
type Generator struct {
	catalog ports.CatalogProvider
	repo    ports.SetlistRepository
	writer  ports.SetlistWriter
	builder *Builder
}

// NewGenerator constructs a Generator.
func NewGenerator(catalog ports.CatalogProvider, repo ports.SetlistRepository, writer ports.SetlistWriter, builder *Builder) *Generator {
	return &Generator{
		catalog: catalog,
		repo:    repo,
		writer:  writer,
		builder: builder,
	}
}

// Generate fetches the playlist, builds the setlist, persists it and writes
// the text export. Fetching completes before the ordering core runs; the
// core itself never blocks on I/O.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	tracks, err := g.catalog.PlaylistTracks(ctx, req.PlaylistID)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("service: failed to fetch playlist tracks: %w", err)
	}

	pool := domain.NewTrackPool(tracks)

	var result GenerateResult
	opener, err := g.builder.SelectOpener(pool, req.OpenerHint)
	if errors.Is(err, domain.ErrTrackNotFound) && req.FallbackToRandom {
		result.HintMissed = true
		opener, err = g.builder.SelectOpener(pool, "")
	}
	if err != nil {
		return GenerateResult{}, fmt.Errorf("service: opener selection failed: %w", err)
	}

	setlist := g.builder.Build(req.PlaylistID, opener, pool, req.MaxLength)
	setlist.ID = uuid.NewString()

	if err := g.repo.Save(ctx, *setlist); err != nil {
		return GenerateResult{}, fmt.Errorf("service: failed to save setlist: %w", err)
	}

	path, err := g.writer.Write(*setlist)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("service: failed to write setlist: %w", err)
	}

	result.Setlist = setlist
	result.Leftover = pool.Tracks()
	result.OutputPath = path
	return result, nil
}
