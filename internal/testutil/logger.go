// Package testutil contains helpers shared by the runtime component tests.
package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a text logger writing to buffer, with timestamps stripped so
// output can be compared verbatim.
func NewBufferLogger(buffer *bytes.Buffer) *slog.Logger {
	opts := slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}}
	return slog.New(slog.NewTextHandler(buffer, &opts))
}
