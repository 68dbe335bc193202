// Package textfile exports setlists as plain text files.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
	"github.com/harmoniq-labs/setlist/internal/core/ports"
)

// Writer persists setlists under a directory, never overwriting a previous
// export: setlist.txt, setlist(1).txt, setlist(2).txt, ...
type Writer struct {
	dir string
}

var _ ports.SetlistWriter = (*Writer)(nil)

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write formats one line per track and returns the path written.
func (w *Writer) Write(s domain.Setlist) (string, error) {
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return "", fmt.Errorf("textfile writer: failed to create output dir: %w", err)
	}

	path, err := w.nextFreePath()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, t := range s.Tracks {
		b.WriteString(FormatLine(t))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return "", fmt.Errorf("textfile writer: failed to write %s: %w", path, err)
	}
	return path, nil
}

// FormatLine renders one track as "[artist, artist] - [name] (120.00 BPM, 8A)".
func FormatLine(t domain.Track) string {
	artists := strings.Join(t.ArtistNames(), ", ")
	return fmt.Sprintf("[%s] - [%s] (%.2f BPM, %s)", artists, t.Name, t.Tempo, t.Notation)
}

func (w *Writer) nextFreePath() (string, error) {
	for counter := 0; ; counter++ {
		name := "setlist.txt"
		if counter > 0 {
			name = fmt.Sprintf("setlist(%d).txt", counter)
		}
		path := filepath.Join(w.dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return path, nil
			}
			return "", fmt.Errorf("textfile writer: failed to stat %s: %w", path, err)
		}
	}
}
