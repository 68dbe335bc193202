package domain

import (
	"strings"

	"github.com/samber/lo"
)

// Artist is a performing artist with its catalog genre tags.
type Artist struct {
	ID     string
	Name   string
	Genres []string
}

// AudioFeatures holds the numeric descriptors the catalog reports per track.
type AudioFeatures struct {
	Speechiness      float64
	Acousticness     float64
	Instrumentalness float64
	Liveness         float64
	Valence          float64
	Tempo            float64
	Danceability     float64
	Energy           float64
}

// Vector returns the descriptor vector used for audio similarity, in fixed
// order. Danceability and energy are stored for display but excluded from
// the similarity vector.
func (f AudioFeatures) Vector() []float64 {
	return []float64{
		f.Speechiness,
		f.Acousticness,
		f.Instrumentalness,
		f.Liveness,
		f.Valence,
		f.Tempo,
	}
}

// Track represents a musical track in the domain layer. Notation is computed
// exactly once at construction and never changes afterwards.
type Track struct {
	ID       string
	Name     string
	Artists  []Artist
	Tempo    float64 // beats per minute
	Features AudioFeatures
	Notation Notation
}

// NewTrack builds a Track, deriving its Camelot notation from the given pitch
// class and mode. Returns an InvalidKeyError when the pair has no wheel entry.
func NewTrack(id, name string, artists []Artist, features AudioFeatures, pitchClass int, mode Mode) (Track, error) {
	notation, err := NotationFor(pitchClass, mode)
	if err != nil {
		return Track{}, err
	}
	return Track{
		ID:       id,
		Name:     name,
		Artists:  artists,
		Tempo:    features.Tempo,
		Features: features,
		Notation: notation,
	}, nil
}

// ArtistNames returns the performing artist names in order.
func (t Track) ArtistNames() []string {
	return lo.Map(t.Artists, func(a Artist, _ int) string { return a.Name })
}

// DisplayString is the "name - artist, artist" form shown to users and
// matched against opener hints.
func (t Track) DisplayString() string {
	return t.Name + " - " + strings.Join(t.ArtistNames(), ", ")
}

// GenreTags returns the deduplicated union of all artists' genre tags.
func (t Track) GenreTags() []string {
	tags := lo.FlatMap(t.Artists, func(a Artist, _ int) []string { return a.Genres })
	return lo.Uniq(tags)
}
