package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "setlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromFileEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := FromFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "tempo_window: 0.03\nmax_length: 10\nallow_half_double_tempo: true\n")

	cfg, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.03, cfg.TempoWindow)
	assert.Equal(t, 10, cfg.MaxLength)
	assert.True(t, cfg.AllowHalfDoubleTempo)
	// Untouched fields keep their defaults.
	assert.Equal(t, 0.08, cfg.EscalatedWindow)
	assert.Equal(t, "output", cfg.OutputDir)
}

func TestFromFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "tempo window too large", content: "tempo_window: 1.5\n"},
		{name: "escalated below tempo window", content: "escalated_window: 0.01\n"},
		{name: "zero max length", content: "max_length: 0\n"},
		{name: "negative weight", content: "audio_weight: -0.5\n"},
		{name: "empty output dir", content: "output_dir: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFile(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestFromFileMissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
