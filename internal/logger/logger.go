// Package logger builds the zerolog logger shared by the cafeteria binary.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout used by every log line.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// New returns a logger writing to w at the given level. With console set,
// output is human-readable; otherwise it is one JSON object per line.
func New(w io.Writer, level zerolog.Level, console bool) zerolog.Logger {
	zerolog.TimeFieldFormat = TimeFormat

	out := w
	if console {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: TimeFormat,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
