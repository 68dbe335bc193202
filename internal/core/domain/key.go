package domain

import (
	"fmt"
	"strconv"
)

// Mode distinguishes minor from major keys, following the catalog encoding
// (0 = minor, 1 = major).
type Mode int

const (
	ModeMinor Mode = 0
	ModeMajor Mode = 1
)

// Notation is a position on the Camelot wheel: a number 1-12 and a letter,
// 'A' for minor keys and 'B' for major keys. Adjacent positions mix smoothly.
type Notation struct {
	Number int
	Letter byte
}

func (n Notation) String() string {
	return fmt.Sprintf("%d%c", n.Number, n.Letter)
}

type keyMode struct {
	pitchClass int
	mode       Mode
}

// camelotWheel maps every (pitch class, mode) pair onto its wheel position.
// This is the published Camelot layout; the table is the single source of
// truth for notation and is never recomputed per track.
var camelotWheel = map[keyMode]Notation{
	{0, ModeMinor}: {5, 'A'}, {0, ModeMajor}: {8, 'B'},
	{1, ModeMinor}: {12, 'A'}, {1, ModeMajor}: {3, 'B'},
	{2, ModeMinor}: {7, 'A'}, {2, ModeMajor}: {10, 'B'},
	{3, ModeMinor}: {2, 'A'}, {3, ModeMajor}: {5, 'B'},
	{4, ModeMinor}: {9, 'A'}, {4, ModeMajor}: {12, 'B'},
	{5, ModeMinor}: {4, 'A'}, {5, ModeMajor}: {7, 'B'},
	{6, ModeMinor}: {11, 'A'}, {6, ModeMajor}: {2, 'B'},
	{7, ModeMinor}: {6, 'A'}, {7, ModeMajor}: {9, 'B'},
	{8, ModeMinor}: {1, 'A'}, {8, ModeMajor}: {4, 'B'},
	{9, ModeMinor}: {8, 'A'}, {9, ModeMajor}: {11, 'B'},
	{10, ModeMinor}: {3, 'A'}, {10, ModeMajor}: {6, 'B'},
	{11, ModeMinor}: {10, 'A'}, {11, ModeMajor}: {1, 'B'},
}

// NotationFor converts a (pitch class, mode) pair into its Camelot notation.
// Input outside the 24-entry table returns an InvalidKeyError.
func NotationFor(pitchClass int, mode Mode) (Notation, error) {
	n, ok := camelotWheel[keyMode{pitchClass, mode}]
	if !ok {
		return Notation{}, InvalidKeyError{PitchClass: pitchClass, Mode: mode}
	}
	return n, nil
}

// ParseNotation parses a notation string like "8A" back into structured form.
// Used when rehydrating stored setlists.
func ParseNotation(s string) (Notation, error) {
	if len(s) < 2 {
		return Notation{}, fmt.Errorf("invalid notation %q", s)
	}
	letter := s[len(s)-1]
	if letter != 'A' && letter != 'B' {
		return Notation{}, fmt.Errorf("invalid notation letter in %q", s)
	}
	number, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || number < 1 || number > 12 {
		return Notation{}, fmt.Errorf("invalid notation number in %q", s)
	}
	return Notation{Number: number, Letter: letter}, nil
}

// Compatibility scores the harmonic transition from n to other. Rules are
// evaluated top to bottom, first match wins:
//
//	1.0  identical notation
//	0.9  same number, different letter (relative key)
//	0.8  numbers a perfect fifth apart (±7 mod 12), same letter
//	0.7  numbers ±7 or ±5 mod 12, different letter (fifth/fourth into the relative)
//	0.6  parallel key (same musical root, different letter)
//	0.0  no defined relationship
//
// The function is symmetric.
func (n Notation) Compatibility(other Notation) float64 {
	if n == other {
		return 1.0
	}
	if n.Number == other.Number && n.Letter != other.Letter {
		return 0.9
	}

	up := (n.Number - other.Number + 12) % 12
	down := (other.Number - n.Number + 12) % 12

	if (up == 7 || down == 7) && n.Letter == other.Letter {
		return 0.8
	}
	if (up == 7 || down == 7 || up == 5 || down == 5) && n.Letter != other.Letter {
		return 0.7
	}
	if n.isParallel(other) {
		return 0.6
	}
	return 0
}

// isParallel reports whether the two notations share a musical root with
// opposite modes. On the wheel a minor key xA has its parallel major at
// (x+3)B, e.g. 5A (C minor) and 8B (C major).
func (n Notation) isParallel(other Notation) bool {
	if n.Letter == other.Letter {
		return false
	}
	minor, major := n, other
	if n.Letter == 'B' {
		minor, major = other, n
	}
	return (minor.Number+2)%12+1 == major.Number
}
