package app

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the application's console logger. The level is
// adjusted later from the log-level option once the config is parsed.
func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
