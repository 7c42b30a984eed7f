package slogtint

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// NewConsoleWriter returns a writer for f that renders terminal sequences on every platform,
// including Windows consoles without native ANSI support.
func NewConsoleWriter(f *os.File) io.Writer {
	return colorable.NewColorable(f)
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewConsoleHandler creates a Handler that writes to f through a StreamHandler. Output that is
// redirected away from a terminal is not styled.
func NewConsoleHandler(f *os.File, opts *HandlerOptions) *Handler {
	o := HandlerOptions{}
	if opts != nil {
		o = *opts
	}
	if !IsTerminal(f) {
		o.Plain = true
	}
	return NewHandler(NewStreamHandler(NewConsoleWriter(f), &slog.HandlerOptions{Level: o.Level}), &o)
}
