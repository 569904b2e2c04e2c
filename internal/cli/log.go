// Package cli implements the standings command-line interface.
//
// The commands fetch the daily standings snapshot, render division images
// and deliver them to a sink, or serve them over HTTP. The CLI is built on
// cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - build: Render all six division images and save them to the sink
//   - render: Render a single division (optionally picked interactively)
//   - show: Print division standings as a terminal table
//   - cache: Inspect or clear the standings cache
//   - serve: Serve images over HTTP, rendered on demand
//
// # Configuration
//
// Every command reads an optional TOML file (--config), STANDINGS_*
// environment variables and its own flags, in that order.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on cache tracing.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps that writes to w
// and filters messages at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Built 6 images (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
