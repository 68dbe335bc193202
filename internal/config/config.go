// Package config loads build tuning from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of a setlist build.
type Config struct {
	// TempoWindow is the ± fraction of the current tempo accepted for the
	// next track.
	TempoWindow float64 `yaml:"tempo_window"`
	// EscalatedWindow is used for one retry when nothing falls inside
	// TempoWindow.
	EscalatedWindow float64 `yaml:"escalated_window"`
	// AllowHalfDoubleTempo also accepts candidates at half or double tempo.
	AllowHalfDoubleTempo bool `yaml:"allow_half_double_tempo"`
	// MaxLength caps the number of tracks in a setlist.
	MaxLength int `yaml:"max_length"`
	// AudioWeight and GenreWeight blend the tie-break similarity score.
	AudioWeight float64 `yaml:"audio_weight"`
	GenreWeight float64 `yaml:"genre_weight"`
	// OutputDir is where text exports are written.
	OutputDir string `yaml:"output_dir"`
	// StoragePath is the sqlite database file for setlist history.
	StoragePath string `yaml:"storage_path"`
}

// Default returns the built-in tuning.
func Default() Config {
	return Config{
		TempoWindow:          0.05,
		EscalatedWindow:      0.08,
		AllowHalfDoubleTempo: false,
		MaxLength:            30,
		AudioWeight:          0.9,
		GenreWeight:          0.1,
		OutputDir:            "output",
		StoragePath:          "setlist.db",
	}
}

func (cfg *Config) validate() error {
	if cfg.TempoWindow <= 0 || cfg.TempoWindow >= 1 {
		return fmt.Errorf("tempo window must be in (0, 1), got %v", cfg.TempoWindow)
	}
	if cfg.EscalatedWindow < cfg.TempoWindow || cfg.EscalatedWindow >= 1 {
		return fmt.Errorf("escalated window must be in [%v, 1), got %v", cfg.TempoWindow, cfg.EscalatedWindow)
	}
	if cfg.MaxLength < 1 {
		return fmt.Errorf("max length must be at least 1, got %d", cfg.MaxLength)
	}
	if cfg.AudioWeight < 0 || cfg.GenreWeight < 0 {
		return errors.New("similarity weights must not be negative")
	}
	if cfg.AudioWeight+cfg.GenreWeight == 0 {
		return errors.New("similarity weights must not both be zero")
	}
	if cfg.OutputDir == "" {
		return errors.New("output dir is empty")
	}
	if cfg.StoragePath == "" {
		return errors.New("storage path is empty")
	}
	return nil
}

// FromFile reads and validates a YAML config, layered over defaults. An
// empty path returns the defaults unchanged.
func FromFile(filePath string) (Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path provided by the operator
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %q: %w", filePath, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config file %q: %w", filePath, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
