// Package sqlite provides a SQLite-backed implementation of the setlist
// repository port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/harmoniq-labs/setlist/internal/core/domain"
	"github.com/harmoniq-labs/setlist/internal/core/ports"
)

// Adapter implements the repository port for SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.SetlistRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Save persists a setlist and its ordered tracks in one transaction.
func (a *Adapter) Save(ctx context.Context, s domain.Setlist) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net: auto-rollback if we error before commit

	querySetlist := `
		INSERT INTO setlists (id, playlist_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET playlist_id=excluded.playlist_id;
	`
	if _, err := tx.ExecContext(ctx, querySetlist, s.ID, s.PlaylistID, s.CreatedAt); err != nil {
		return fmt.Errorf("failed to save setlist metadata: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM setlist_tracks WHERE setlist_id = ?", s.ID); err != nil {
		return fmt.Errorf("failed to clear old setlist tracks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO setlist_tracks (setlist_id, position, track_id, title, artists, tempo, notation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for position, t := range s.Tracks {
		if _, err := stmt.ExecContext(
			ctx,
			s.ID,
			position,
			t.ID,
			t.Name,
			strings.Join(t.ArtistNames(), ", "),
			t.Tempo,
			t.Notation.String(),
		); err != nil {
			return fmt.Errorf("failed to save setlist track %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}
	return nil
}

// GetByID loads one stored setlist with its tracks in order. Tracks are
// rehydrated with the display fields only; audio features are not kept in
// history.
func (a *Adapter) GetByID(ctx context.Context, id string) (domain.Setlist, error) {
	row := a.db.QueryRowContext(ctx, "SELECT id, playlist_id, created_at FROM setlists WHERE id = ?", id)

	var s domain.Setlist
	if err := row.Scan(&s.ID, &s.PlaylistID, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Setlist{}, domain.ErrNotFound
		}
		return domain.Setlist{}, fmt.Errorf("failed to load setlist: %w", err)
	}

	tracks, err := a.loadTracks(ctx, s.ID)
	if err != nil {
		return domain.Setlist{}, err
	}
	s.Tracks = tracks
	return s, nil
}

// List returns all stored setlists, newest first.
func (a *Adapter) List(ctx context.Context) ([]domain.Setlist, error) {
	rows, err := a.db.QueryContext(ctx, "SELECT id, playlist_id, created_at FROM setlists ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list setlists: %w", err)
	}
	defer rows.Close()

	var setlists []domain.Setlist
	for rows.Next() {
		var s domain.Setlist
		if err := rows.Scan(&s.ID, &s.PlaylistID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setlist: %w", err)
		}
		setlists = append(setlists, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate setlists: %w", err)
	}

	for i := range setlists {
		tracks, err := a.loadTracks(ctx, setlists[i].ID)
		if err != nil {
			return nil, err
		}
		setlists[i].Tracks = tracks
	}
	return setlists, nil
}

func (a *Adapter) loadTracks(ctx context.Context, setlistID string) ([]domain.Track, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT track_id, title, artists, tempo, notation
		FROM setlist_tracks
		WHERE setlist_id = ?
		ORDER BY position ASC
	`, setlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load setlist tracks: %w", err)
	}
	defer rows.Close()

	var tracks []domain.Track
	for rows.Next() {
		var track domain.Track
		var artists string
		var notation string
		if err := rows.Scan(&track.ID, &track.Name, &artists, &track.Tempo, &notation); err != nil {
			return nil, fmt.Errorf("failed to scan setlist track: %w", err)
		}
		if artists != "" {
			for _, name := range strings.Split(artists, ", ") {
				track.Artists = append(track.Artists, domain.Artist{Name: name})
			}
		}
		parsed, err := domain.ParseNotation(notation)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored notation: %w", err)
		}
		track.Notation = parsed
		track.Features.Tempo = track.Tempo
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate setlist tracks: %w", err)
	}
	return tracks, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS setlists (
		id TEXT PRIMARY KEY,
		playlist_id TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS setlist_tracks (
		setlist_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		track_id TEXT NOT NULL,
		title TEXT NOT NULL,
		artists TEXT,
		tempo REAL,
		notation TEXT,
		PRIMARY KEY (setlist_id, position),
		FOREIGN KEY(setlist_id) REFERENCES setlists(id) ON DELETE CASCADE
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}
	return nil
}
