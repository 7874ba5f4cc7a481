// Package logging builds the zerolog loggers used across the application.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/mpyw/shellbridge/internal/config"
)

// Options controls logger construction.
type Options struct {
	Level  string // zerolog level name; empty means info
	Format string // config.FormatConsole or config.FormatJSON
}

// FromConfig returns the logging options described by cfg.
func FromConfig(cfg config.Log) Options {
	return Options{Level: cfg.Level, Format: cfg.Format}
}

// New returns a logger writing to w.
// Console output is colored only when w is a terminal.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel

	if opts.Level != "" {
		var err error
		if level, err = zerolog.ParseLevel(opts.Level); err != nil {
			return zerolog.Nop(), err
		}
	}

	if opts.Format != config.FormatJSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !isTerminal(w),
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
