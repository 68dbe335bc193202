package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a requested record does not exist in storage.
var ErrNotFound = errors.New("domain: not found")

// ErrInvalidKey indicates a pitch-class/mode pair outside the Camelot wheel.
var ErrInvalidKey = errors.New("domain: invalid key")

// ErrEmptyPool indicates an opener was requested from an empty track pool.
var ErrEmptyPool = errors.New("domain: empty track pool")

// ErrTrackNotFound indicates no pool track matched an opener hint.
var ErrTrackNotFound = errors.New("domain: track not found")

// InvalidKeyError provides context for a pitch-class/mode pair that has no
// Camelot wheel entry.
type InvalidKeyError struct {
	PitchClass int
	Mode       Mode
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("no camelot notation for pitch class %d mode %d", e.PitchClass, e.Mode)
}

func (e InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// TrackNotFoundError carries the hint that failed to match any pool track.
// It is recoverable: callers may retry with a different hint or fall back to
// a random opener.
type TrackNotFoundError struct {
	Hint string
}

func (e TrackNotFoundError) Error() string {
	if e.Hint == "" {
		return ErrTrackNotFound.Error()
	}
	return fmt.Sprintf("no track matching hint %q in pool", e.Hint)
}

func (e TrackNotFoundError) Is(target error) bool {
	return target == ErrTrackNotFound
}
