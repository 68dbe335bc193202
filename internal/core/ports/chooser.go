package ports

// Chooser abstracts the random-choice capability used for opener selection
// and final tie-breaking, so builds are reproducible under an injected
// deterministic source.
type Chooser interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}
