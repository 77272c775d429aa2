// Package logger builds the zerolog loggers used by the command line tools.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level ("debug",
// "info", "warn", ...).  An empty level means "info".
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("bad log level %q: %w", level, err)
		}
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
