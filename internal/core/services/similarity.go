package services

import (
	"math"

	"github.com/samber/lo"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
)

// cosineSimilarity computes the cosine of the angle between two descriptor
// vectors. A zero-magnitude vector has no direction, so similarity is 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// genreSimilarity is the Jaccard index over the two tracks' genre tag sets.
// An empty union scores 0 rather than dividing by zero.
func genreSimilarity(a, b domain.Track) float64 {
	tagsA := a.GenreTags()
	tagsB := b.GenreTags()

	union := lo.Union(tagsA, tagsB)
	if len(union) == 0 {
		return 0
	}
	intersection := lo.Intersect(tagsA, tagsB)
	return float64(len(intersection)) / float64(len(union))
}

// similarityScore is the secondary ranking key used to break compatibility
// ties: a weighted blend of audio-descriptor cosine similarity and genre
// overlap.
func (b *Builder) similarityScore(current, candidate domain.Track) float64 {
	audio := cosineSimilarity(current.Features.Vector(), candidate.Features.Vector())
	genre := genreSimilarity(current, candidate)
	return b.params.AudioWeight*audio + b.params.GenreWeight*genre
}
