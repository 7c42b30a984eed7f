package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/apperia-de/slogtint"
	"github.com/charmbracelet/log"
)

// Output formats of the demo command.
const (
	formatStream = "stream"
	formatCharm  = "charm"
)

// newTarget returns the handler that receives the styled records of the demo command.
func newTarget(format string, w io.Writer, level slog.Level) (slog.Handler, error) {
	switch format {
	case "", formatStream:
		return slogtint.NewStreamHandler(w, &slog.HandlerOptions{Level: level}), nil
	case formatCharm:
		return log.NewWithOptions(w, log.Options{
			Level:           charmLevel(level),
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
		}), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// charmLevel converts level to the 32 bit level of charmbracelet/log.
func charmLevel(level slog.Level) log.Level {
	if level < math.MinInt32 {
		return log.Level(math.MinInt32)
	}
	return log.Level(level)
}

// newDemoHandler builds the styled handler of the demo command on top of the given output format.
func newDemoHandler(format string, f *os.File, opts *slogtint.HandlerOptions) (*slogtint.Handler, error) {
	o := *opts
	if !slogtint.IsTerminal(f) {
		o.Plain = true
	}
	level := slogtint.LevelNotSet
	if o.Level != nil {
		level = o.Level.Level()
	}
	target, err := newTarget(format, slogtint.NewConsoleWriter(f), level)
	if err != nil {
		return nil, err
	}
	return slogtint.NewHandler(target, &o), nil
}
