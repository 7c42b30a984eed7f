package slogtint_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/apperia-de/slogtint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("message is written verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		h := slogtint.NewStreamHandler(&buf, nil)
		r := slog.NewRecord(time.Time{}, slog.LevelError, "\x1b[31mred \"quoted\"\x1b[0m", 0)
		require.NoError(t, h.Handle(ctx, r))

		assert.Equal(t, "ERROR \x1b[31mred \"quoted\"\x1b[0m\n", buf.String())
	})

	t.Run("time and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		h := slogtint.NewStreamHandler(&buf, nil)
		ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)
		r := slog.NewRecord(ts, slog.LevelInfo, "hello", 0)
		r.AddAttrs(slog.String("user", "jane doe"), slog.Int("n", 3))
		require.NoError(t, h.Handle(ctx, r))

		assert.Equal(t, "2024/05/01 12:30:00 INFO hello user=\"jane doe\" n=3\n", buf.String())
	})

	t.Run("WithAttrs and WithGroup", func(t *testing.T) {
		var buf bytes.Buffer
		h := slogtint.NewStreamHandler(&buf, nil).WithAttrs([]slog.Attr{slog.Int("a", 1)}).WithGroup("g")
		r := slog.NewRecord(time.Time{}, slog.LevelWarn+1, "hello", 0)
		r.AddAttrs(slog.Int("b", 2))
		require.NoError(t, h.Handle(ctx, r))

		assert.Equal(t, "WARNING+1 hello a=1 g.b=2\n", buf.String())
	})

	t.Run("ReplaceAttr applies to attributes only", func(t *testing.T) {
		var buf bytes.Buffer
		h := slogtint.NewStreamHandler(&buf, &slog.HandlerOptions{
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == "secret" {
					return slog.String("secret", "***")
				}
				return a
			},
		})
		r := slog.NewRecord(time.Time{}, slog.LevelInfo, "login", 0)
		r.AddAttrs(slog.String("secret", "hunter2"))
		require.NoError(t, h.Handle(ctx, r))

		assert.Equal(t, "INFO login secret=***\n", buf.String())
	})

	t.Run("Enabled", func(t *testing.T) {
		h := slogtint.NewStreamHandler(&bytes.Buffer{}, nil)
		assert.False(t, h.Enabled(ctx, slog.LevelDebug))
		assert.True(t, h.Enabled(ctx, slog.LevelInfo))

		h = slogtint.NewStreamHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slogtint.LevelNotSet})
		assert.True(t, h.Enabled(ctx, slog.LevelDebug-100))
	})
}
