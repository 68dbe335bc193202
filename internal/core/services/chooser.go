package services

import (
	"math/rand"

	"github.com/harmoniq-labs/setlist/internal/core/ports"
)

// SeededChooser draws from a math/rand source with an explicit seed, keeping
// opener selection and tie-breaking reproducible for a given seed.
type SeededChooser struct {
	rng *rand.Rand
}

var _ ports.Chooser = (*SeededChooser)(nil)

// NewSeededChooser constructs a chooser over its own rand source.
// #nosec G404 -- selection randomness is not security-sensitive
func NewSeededChooser(seed int64) *SeededChooser {
	return &SeededChooser{rng: rand.New(rand.NewSource(seed))}
}

func (c *SeededChooser) Intn(n int) int {
	return c.rng.Intn(n)
}
