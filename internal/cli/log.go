// Package cli implements the reduce command-line interface: flag
// parsing, input assembly (CNF, symmetry graph, variable/value/prefix
// declarations), engine wiring, and output formatting (spec.md §6).
//
// The CLI is built with cobra and logs via charmbracelet/log, exactly
// as matzehuels-stacktower's internal/cli package does: one root
// command, a persistent --verbose flag, and a logger threaded through
// context.Context rather than passed as an explicit parameter. The
// core packages (graph, labeler, traversal, orbitmin, selector,
// prefix, engine) never log; this package passes fatal input and
// contract-violation errors up through Execute, and cmd/reduce's main
// prints them and turns them into a process exit code (spec.md §7).
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// short timestamps (matching matzehuels-stacktower's convention).
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with l attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() if none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
