package spotify

import (
	"github.com/samber/lo"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
)

// mapTrackToDomain converts a raw playlist track plus its audio features
// into a domain.Track, attaching each artist's prefetched genre tags. The
// Camelot notation is derived here, once, from the reported key and mode.
func mapTrackToDomain(pt playlistTrack, features audioFeatures, genresByArtist map[string][]string) (domain.Track, error) {
	artists := lo.Map(pt.Artists, func(ref artistRef, _ int) domain.Artist {
		return domain.Artist{
			ID:     ref.ID,
			Name:   ref.Name,
			Genres: genresByArtist[ref.ID],
		}
	})

	return domain.NewTrack(
		pt.ID,
		pt.Name,
		artists,
		domain.AudioFeatures{
			Speechiness:      features.Speechiness,
			Acousticness:     features.Acousticness,
			Instrumentalness: features.Instrumentalness,
			Liveness:         features.Liveness,
			Valence:          features.Valence,
			Tempo:            features.Tempo,
			Danceability:     features.Danceability,
			Energy:           features.Energy,
		},
		features.Key,
		domain.Mode(features.Mode),
	)
}
