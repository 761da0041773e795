// Package logging provides configured zerolog loggers.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a structured logger for embedded library use.
func New(service string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// NewCLI returns a console logger on stderr, so command output on
// stdout stays clean. Unknown level names fall back to warn.
func NewCLI(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
