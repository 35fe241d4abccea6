// Package logging builds the slog loggers shared by the canova commands and
// libraries.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns the stderr logger used by canova serve, mcp and flow.
// Stdout stays free for flow output and the MCP stdio transport.
// Attributes logged under "error" are renamed to "err".
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is New writing to w.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// ParseLevel maps a level name such as "debug" or "WARN" to its slog level.
// Empty or unknown names give info.
func ParseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NewNop returns a logger that drops every record. Engines, stores and the
// service default to it until a logger is injected.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
