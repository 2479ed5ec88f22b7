// Package logging carries the parser's slog.Logger on a context.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type ctxKey struct{}

// discard is used when no logger was attached, so parsing stays silent
// unless the caller opts in.
var discard = slog.New(slog.DiscardHandler)

// Options selects the handler built by New.
type Options struct {
	// Level is debug, info, warn or error; empty means info.
	Level string
	// Format is "text" (default) or "json".
	Format    string
	AddSource bool
}

// New returns a logger writing records at or above opts.Level to w.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	var lvl slog.Level
	if opts.Level != "" {
		if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	hopts := &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}
	switch strings.ToLower(opts.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return nil, fmt.Errorf("unsupported log format: %q", opts.Format)
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached by WithContext, or a logger that
// drops every record.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return discard
}
