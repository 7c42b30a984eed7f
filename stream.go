package slogtint

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
)

const streamTimeFormat = "2006/01/02 15:04:05"

// StreamHandler writes records as "TIME LEVEL MESSAGE key=value ..." lines. Unlike slog.TextHandler it writes
// the message verbatim, so terminal sequences in it reach the terminal instead of being quoted.
// Attributes are rendered by a slog.TextHandler.
type StreamHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	buf   *bytes.Buffer
	text  slog.Handler
	level slog.Leveler
}

// NewStreamHandler creates a StreamHandler writing to w. opts.ReplaceAttr is applied to all attributes
// except the built-in time, level and message.
func NewStreamHandler(w io.Writer, opts *slog.HandlerOptions) *StreamHandler {
	o := slog.HandlerOptions{}
	if opts != nil {
		o = *opts
	}

	replace := o.ReplaceAttr
	buf := new(bytes.Buffer)
	text := slog.NewTextHandler(buf, &slog.HandlerOptions{
		AddSource: o.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 {
				switch a.Key {
				case slog.TimeKey, slog.LevelKey, slog.MessageKey:
					return slog.Attr{}
				}
			}
			if replace != nil {
				return replace(groups, a)
			}
			return a
		},
	})

	level := o.Level
	if level == nil {
		level = slog.LevelInfo
	}

	return &StreamHandler{mu: &sync.Mutex{}, w: w, buf: buf, text: text, level: level}
}

func (h *StreamHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level.Level()
}

func (h *StreamHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if !r.Time.IsZero() {
		h.buf.WriteString(r.Time.Format(streamTimeFormat))
		h.buf.WriteByte(' ')
	}
	h.buf.WriteString(LevelName(r.Level))
	h.buf.WriteByte(' ')
	h.buf.WriteString(r.Message)
	header := h.buf.Len()

	h.buf.WriteByte(' ')
	// The text handler appends the attributes and the trailing newline to h.buf.
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	if h.buf.Len() == header+2 {
		h.buf.Truncate(header)
		h.buf.WriteByte('\n')
	}

	_, err := h.w.Write(h.buf.Bytes())
	return err
}

func (h *StreamHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.text = h.text.WithAttrs(attrs)
	return &h2
}

func (h *StreamHandler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.text = h.text.WithGroup(name)
	return &h2
}
