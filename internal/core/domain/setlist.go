package domain

import (
	"errors"
	"time"
)

// TrackPool is the working set of not-yet-placed tracks. Tracks only ever
// leave the pool, each exactly once, when they are placed into a setlist.
type TrackPool struct {
	tracks []Track
}

// NewTrackPool copies the given tracks into a fresh pool.
func NewTrackPool(tracks []Track) *TrackPool {
	cp := make([]Track, len(tracks))
	copy(cp, tracks)
	return &TrackPool{tracks: cp}
}

// Len returns the number of tracks remaining in the pool.
func (p *TrackPool) Len() int {
	return len(p.tracks)
}

// At returns the track at index i.
func (p *TrackPool) At(i int) Track {
	return p.tracks[i]
}

// Remove takes the track at index i out of the pool and returns it.
func (p *TrackPool) Remove(i int) Track {
	t := p.tracks[i]
	p.tracks = append(p.tracks[:i], p.tracks[i+1:]...)
	return t
}

// Tracks returns a copy of the remaining tracks.
func (p *TrackPool) Tracks() []Track {
	cp := make([]Track, len(p.tracks))
	copy(cp, p.tracks)
	return cp
}

// Setlist is an ordered, append-only sequence of placed tracks.
type Setlist struct {
	ID         string
	PlaylistID string
	CreatedAt  time.Time
	Tracks     []Track
}

// NewSetlist starts a setlist with the chosen opener.
func NewSetlist(playlistID string, opener Track) *Setlist {
	return &Setlist{
		PlaylistID: playlistID,
		CreatedAt:  time.Now(),
		Tracks:     []Track{opener},
	}
}

// Append places the next track at the end of the setlist.
func (s *Setlist) Append(t Track) {
	s.Tracks = append(s.Tracks, t)
}

// Len returns the number of placed tracks.
func (s *Setlist) Len() int {
	return len(s.Tracks)
}

// Last returns the most recently placed track.
func (s *Setlist) Last() (Track, error) {
	if len(s.Tracks) == 0 {
		return Track{}, errors.New("domain: empty setlist")
	}
	return s.Tracks[len(s.Tracks)-1], nil
}
