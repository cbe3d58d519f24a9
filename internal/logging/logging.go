// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
)

// Setup replaces the base logger. level accepts zerolog level names
// ("debug", "info", ...); unknown values keep the default of warn.
func Setup(level string, out io.Writer) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}
	if out == nil {
		out = os.Stderr
	}

	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(parsed).
		With().Timestamp().Logger()
}

// Component returns a logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
