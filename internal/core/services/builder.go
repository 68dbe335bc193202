package services

import (
	"strings"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
	"github.com/harmoniq-labs/setlist/internal/core/ports"
)

// BuildParams tunes the greedy selection algorithm.
type BuildParams struct {
	// TempoWindow is the fraction of the current tempo that bounds
	// acceptable next-track tempos, e.g. 0.05 for ±5%.
	TempoWindow float64
	// EscalatedWindow replaces TempoWindow for a single retry when no
	// candidate falls inside the initial window. Escalation never leaks
	// across builds.
	EscalatedWindow float64
	// AllowHalfDouble also accepts candidates whose half or double tempo
	// falls inside the window.
	AllowHalfDouble bool
	// AudioWeight and GenreWeight blend the tie-break similarity score.
	AudioWeight float64
	GenreWeight float64
}

// DefaultBuildParams mirrors the tuning the tool ships with.
func DefaultBuildParams() BuildParams {
	return BuildParams{
		TempoWindow:     0.05,
		EscalatedWindow: 0.08,
		AllowHalfDouble: false,
		AudioWeight:     0.9,
		GenreWeight:     0.1,
	}
}

// Builder owns the greedy setlist ordering algorithm: opener selection and
// iterative next-track selection with tempo filtering, harmonic ranking and
// similarity tie-breaking. It is synchronous and performs no I/O.
type Builder struct {
	chooser ports.Chooser
	params  BuildParams
}

// NewBuilder constructs a Builder. All randomness flows through chooser.
func NewBuilder(chooser ports.Chooser, params BuildParams) *Builder {
	return &Builder{chooser: chooser, params: params}
}

// SelectOpener removes and returns the first track of the setlist. With a
// hint, the first pool track whose display string contains the hint
// (case-insensitive) wins; a miss returns a recoverable TrackNotFoundError.
// Without a hint the opener is chosen uniformly at random.
func (b *Builder) SelectOpener(pool *domain.TrackPool, nameHint string) (domain.Track, error) {
	if pool.Len() == 0 {
		return domain.Track{}, domain.ErrEmptyPool
	}

	if nameHint == "" {
		return pool.Remove(b.chooser.Intn(pool.Len())), nil
	}

	hint := strings.ToLower(nameHint)
	for i := 0; i < pool.Len(); i++ {
		if strings.Contains(strings.ToLower(pool.At(i).DisplayString()), hint) {
			return pool.Remove(i), nil
		}
	}
	return domain.Track{}, domain.TrackNotFoundError{Hint: nameHint}
}

// SelectNext removes and returns the best follow-up to current, or ok=false
// when no pool track is tempo-compatible even after window escalation.
func (b *Builder) SelectNext(current domain.Track, pool *domain.TrackPool) (domain.Track, bool) {
	candidates := b.filterTempo(current.Tempo, pool, b.params.TempoWindow)
	if len(candidates) == 0 && b.params.EscalatedWindow > b.params.TempoWindow {
		candidates = b.filterTempo(current.Tempo, pool, b.params.EscalatedWindow)
	}
	if len(candidates) == 0 {
		return domain.Track{}, false
	}

	best := b.rank(current, pool, candidates)
	return pool.Remove(best), true
}

// Build extends the setlist one track at a time until maxLength tracks are
// placed, the pool is exhausted, or no tempo-compatible candidate remains.
func (b *Builder) Build(playlistID string, opener domain.Track, pool *domain.TrackPool, maxLength int) *domain.Setlist {
	setlist := domain.NewSetlist(playlistID, opener)

	current := opener
	for setlist.Len() < maxLength && pool.Len() > 0 {
		next, ok := b.SelectNext(current, pool)
		if !ok {
			break
		}
		setlist.Append(next)
		current = next
	}
	return setlist
}

// filterTempo returns pool indices whose tempo falls inside the window
// around the current tempo.
func (b *Builder) filterTempo(tempo float64, pool *domain.TrackPool, window float64) []int {
	bpmMin := tempo * (1 - window)
	bpmMax := tempo * (1 + window)

	inWindow := func(bpm float64) bool {
		return bpm >= bpmMin && bpm <= bpmMax
	}

	var indices []int
	for i := 0; i < pool.Len(); i++ {
		bpm := pool.At(i).Tempo
		if inWindow(bpm) {
			indices = append(indices, i)
			continue
		}
		if b.params.AllowHalfDouble && (inWindow(bpm*2) || inWindow(bpm/2)) {
			indices = append(indices, i)
		}
	}
	return indices
}

// rank picks the winning candidate index: maximum harmonic compatibility
// first, similarity score within the tied group, uniform random among exact
// ties. Similarity is only computed for the max-compatibility group.
func (b *Builder) rank(current domain.Track, pool *domain.TrackPool, candidates []int) int {
	bestCompat := -1.0
	var group []int
	for _, i := range candidates {
		compat := current.Notation.Compatibility(pool.At(i).Notation)
		switch {
		case compat > bestCompat:
			bestCompat = compat
			group = group[:0]
			group = append(group, i)
		case compat == bestCompat:
			group = append(group, i)
		}
	}
	if len(group) == 1 {
		return group[0]
	}

	bestScore := -1.0
	var tied []int
	for _, i := range group {
		score := b.similarityScore(current, pool.At(i))
		switch {
		case score > bestScore:
			bestScore = score
			tied = tied[:0]
			tied = append(tied, i)
		case score == bestScore:
			tied = append(tied, i)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[b.chooser.Intn(len(tied))]
}
