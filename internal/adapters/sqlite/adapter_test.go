package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
)

func testTrack(t *testing.T, id, name string, tempo float64) domain.Track {
	t.Helper()

	track, err := domain.NewTrack(
		id,
		name,
		[]domain.Artist{{Name: "Artist A"}, {Name: "Artist B"}},
		domain.AudioFeatures{Tempo: tempo},
		9, domain.ModeMinor,
	)
	if err != nil {
		t.Fatalf("new track: %v", err)
	}
	return track
}

func testSetlist(t *testing.T, id string) domain.Setlist {
	t.Helper()

	return domain.Setlist{
		ID:         id,
		PlaylistID: "pl-1",
		CreatedAt:  time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		Tracks: []domain.Track{
			testTrack(t, "t1", "Song One", 120),
			testTrack(t, "t2", "Song Two", 122.5),
		},
	}
}

func TestAdapter_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, a *Adapter) string
		wantErr    error
		wantTracks int
	}{
		{
			name: "not found",
			setup: func(t *testing.T, a *Adapter) string {
				return "missing"
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "returns setlist with ordered tracks",
			setup: func(t *testing.T, a *Adapter) string {
				s := testSetlist(t, "sl-1")
				if err := a.Save(context.Background(), s); err != nil {
					t.Fatalf("save setlist: %v", err)
				}
				return s.ID
			},
			wantTracks: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAdapter(":memory:")
			if err != nil {
				t.Fatalf("new adapter: %v", err)
			}
			defer a.Close()

			setlistID := tt.setup(t, a)
			got, err := a.GetByID(context.Background(), setlistID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.PlaylistID != "pl-1" {
				t.Fatalf("playlist id: got %q, want %q", got.PlaylistID, "pl-1")
			}
			if len(got.Tracks) != tt.wantTracks {
				t.Fatalf("tracks: got %d, want %d", len(got.Tracks), tt.wantTracks)
			}

			first := got.Tracks[0]
			if first.ID != "t1" || first.Name != "Song One" {
				t.Fatalf("track order not preserved: %+v", first)
			}
			if first.Tempo != 120 {
				t.Fatalf("tempo: got %v, want 120", first.Tempo)
			}
			if first.Notation.String() != "8A" {
				t.Fatalf("notation: got %q, want %q", first.Notation.String(), "8A")
			}
			if len(first.Artists) != 2 || first.Artists[0].Name != "Artist A" {
				t.Fatalf("artists not rehydrated: %+v", first.Artists)
			}
		})
	}
}

func TestAdapter_SaveIsIdempotentPerID(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	s := testSetlist(t, "sl-1")
	if err := a.Save(context.Background(), s); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Saving again with fewer tracks must replace, not append.
	s.Tracks = s.Tracks[:1]
	if err := a.Save(context.Background(), s); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := a.GetByID(context.Background(), "sl-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Tracks) != 1 {
		t.Fatalf("tracks after resave: got %d, want 1", len(got.Tracks))
	}
}

func TestAdapter_List(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	older := testSetlist(t, "sl-old")
	older.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testSetlist(t, "sl-new")
	newer.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, s := range []domain.Setlist{older, newer} {
		if err := a.Save(context.Background(), s); err != nil {
			t.Fatalf("save %s: %v", s.ID, err)
		}
	}

	got, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("setlists: got %d, want 2", len(got))
	}
	if got[0].ID != "sl-new" || got[1].ID != "sl-old" {
		t.Fatalf("expected newest first, got %s then %s", got[0].ID, got[1].ID)
	}
	if len(got[0].Tracks) != 2 {
		t.Fatalf("listed setlist missing tracks: %d", len(got[0].Tracks))
	}
}
