package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{name: "identical vectors", a: []float64{0.2, 0.4, 120}, b: []float64{0.2, 0.4, 120}, want: 1.0},
		{name: "parallel vectors", a: []float64{1, 2, 3}, b: []float64{2, 4, 6}, want: 1.0},
		{name: "orthogonal vectors", a: []float64{1, 0}, b: []float64{0, 1}, want: 0.0},
		{name: "zero vector", a: []float64{0, 0, 0}, b: []float64{0.1, 0.2, 0.3}, want: 0.0},
		{name: "length mismatch", a: []float64{1}, b: []float64{1, 2}, want: 0.0},
		{name: "empty", a: nil, b: nil, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func genreTrack(t *testing.T, id string, genresByArtist ...[]string) domain.Track {
	t.Helper()

	artists := make([]domain.Artist, 0, len(genresByArtist))
	for i, genres := range genresByArtist {
		artists = append(artists, domain.Artist{Name: "Artist", ID: id + "-" + string(rune('a'+i)), Genres: genres})
	}
	track, err := domain.NewTrack(id, "Song", artists, domain.AudioFeatures{Tempo: 120}, 0, domain.ModeMinor)
	require.NoError(t, err)
	return track
}

func TestGenreSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    domain.Track
		b    domain.Track
		want float64
	}{
		{
			name: "both empty scores zero",
			a:    genreTrack(t, "a", nil),
			b:    genreTrack(t, "b", nil),
			want: 0,
		},
		{
			name: "identical sets",
			a:    genreTrack(t, "a", []string{"house", "techno"}),
			b:    genreTrack(t, "b", []string{"techno", "house"}),
			want: 1,
		},
		{
			name: "partial overlap",
			a:    genreTrack(t, "a", []string{"house", "techno"}),
			b:    genreTrack(t, "b", []string{"techno", "electro"}),
			want: 1.0 / 3.0,
		},
		{
			name: "tags pooled across artists",
			a:    genreTrack(t, "a", []string{"house"}, []string{"techno"}),
			b:    genreTrack(t, "b", []string{"techno"}),
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, genreSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityScoreWeights(t *testing.T) {
	b := NewBuilder(&scriptedChooser{}, BuildParams{AudioWeight: 0.9, GenreWeight: 0.1})

	// Same descriptor vector (cosine 1.0), disjoint genres (jaccard 0).
	x := buildTrack(t, trackParams{id: "x", tempo: 120, pitchClass: 9, mode: domain.ModeMinor, genres: []string{"house"}})
	y := buildTrack(t, trackParams{id: "y", tempo: 120, pitchClass: 9, mode: domain.ModeMinor, genres: []string{"jazz"}})

	assert.InDelta(t, 0.9, b.similarityScore(x, y), 1e-9)
}
