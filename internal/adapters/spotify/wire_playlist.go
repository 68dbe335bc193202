package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
	"github.com/harmoniq-labs/setlist/internal/worker"
)

// PlaylistTracks fetches every track of a playlist and returns fully
// materialized domain tracks: metadata, audio features and artist genres.
// Tracks the catalog cannot describe (missing features, keys outside the
// wheel) are skipped with a warning rather than failing the whole fetch.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]domain.Track, error) {
	raw, err := c.fetchPlaylistPages(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	featuresByID, err := c.fetchAudioFeatures(ctx, lo.Map(raw, func(pt playlistTrack, _ int) string { return pt.ID }))
	if err != nil {
		return nil, err
	}

	artistIDs := lo.Uniq(lo.FlatMap(raw, func(pt playlistTrack, _ int) []string {
		return lo.FilterMap(pt.Artists, func(ref artistRef, _ int) (string, bool) { return ref.ID, ref.ID != "" })
	}))

	pool := worker.NewPool(c.artistGenres, c.genreWorkers, c.logger)
	genresByArtist, err := pool.FetchAll(ctx, artistIDs)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: genre prefetch failed: %w", err)
	}

	tracks := make([]domain.Track, 0, len(raw))
	for _, pt := range raw {
		features, ok := featuresByID[pt.ID]
		if !ok {
			c.logger.Warn().Str("track_id", pt.ID).Str("name", pt.Name).Msg("no audio features, skipping track")
			continue
		}

		track, err := mapTrackToDomain(pt, features, genresByArtist)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidKey) {
				c.logger.Warn().Err(err).Str("track_id", pt.ID).Str("name", pt.Name).Msg("unmappable key, skipping track")
				continue
			}
			return nil, fmt.Errorf("spotify adapter: mapping track %s: %w", pt.ID, err)
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// fetchPlaylistPages walks the paginated track listing until the catalog
// reports no next page. Local tracks come back without an ID and are
// dropped here.
func (c *Client) fetchPlaylistPages(ctx context.Context, playlistID string) ([]playlistTrack, error) {
	pageURL := fmt.Sprintf("%s/playlists/%s/tracks?limit=%d", c.baseURL, url.PathEscape(playlistID), c.pageLimit)

	var raw []playlistTrack
	for pageURL != "" {
		var page playlistTracksPage
		if err := c.getJSON(ctx, pageURL, &page); err != nil {
			return nil, fmt.Errorf("spotify adapter: playlist page failed: %w", err)
		}
		for _, item := range page.Items {
			if item.Track.ID == "" {
				continue
			}
			raw = append(raw, item.Track)
		}
		pageURL = page.Next
	}
	return raw, nil
}

// fetchAudioFeatures resolves features in catalog-sized batches. Null
// entries (tracks the catalog never analyzed) are left out of the result.
func (c *Client) fetchAudioFeatures(ctx context.Context, trackIDs []string) (map[string]audioFeatures, error) {
	byID := make(map[string]audioFeatures, len(trackIDs))
	for _, chunk := range lo.Chunk(trackIDs, featuresBatchSize) {
		featuresURL := fmt.Sprintf("%s/audio-features?ids=%s", c.baseURL, url.QueryEscape(strings.Join(chunk, ",")))

		var page audioFeaturesPage
		if err := c.getJSON(ctx, featuresURL, &page); err != nil {
			return nil, fmt.Errorf("spotify adapter: audio features failed: %w", err)
		}
		for _, features := range page.AudioFeatures {
			if features == nil {
				continue
			}
			byID[features.ID] = *features
		}
	}
	return byID, nil
}

// artistGenres is the per-artist lookup fanned out by the worker pool.
func (c *Client) artistGenres(ctx context.Context, artistID string) ([]string, error) {
	var detail artistDetail
	artistURL := fmt.Sprintf("%s/artists/%s", c.baseURL, url.PathEscape(artistID))
	if err := c.getJSON(ctx, artistURL, &detail); err != nil {
		return nil, err
	}
	return detail.Genres, nil
}
