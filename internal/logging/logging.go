// Package logging builds the zerolog logger shared by the binaries.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/vocab/internal/config"
)

// New returns a logger writing to w at the configured level. The "console"
// format is human readable; anything else logs JSON lines.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
