package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger writing text records to w.
// Stdout belongs to the wizard UI, so callers pass os.Stderr.
// The "error" key is standardized to "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
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

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ForDebug returns a debug-level stderr logger when debug is set, otherwise a no-op logger.
func ForDebug(debug bool) *slog.Logger {
	if debug {
		return New(os.Stderr, slog.LevelDebug)
	}
	return NewNop()
}
