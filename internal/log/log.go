// Package log constructs the application's zerolog loggers.
package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger for interactive CLI use.
func New(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).With().Timestamp().Logger()
}

// Nop returns a disabled logger for tests and optional dependencies.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
