// Package logging builds the charmbracelet loggers shared by the simulation
// and its front-ends.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level      string // debug, info, warn, error; empty means info
	Prefix     string
	Timestamps bool
	Output     io.Writer // defaults to os.Stderr
}

// New builds a logger from options. An unknown level falls back to info and
// is reported through the new logger.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: opts.Timestamps,
		Prefix:          opts.Prefix,
	})

	if opts.Level == "" {
		return logger
	}
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", opts.Level)
		return logger
	}
	logger.SetLevel(level)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
