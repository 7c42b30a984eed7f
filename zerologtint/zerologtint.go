// Package zerologtint applies slogtint profiles to the console output of zerolog.
package zerologtint

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/apperia-de/slogtint"
	"github.com/rs/zerolog"
)

// levels maps zerolog levels onto the slog scale used by slogtint profiles.
var levels = map[zerolog.Level]slog.Level{
	zerolog.TraceLevel: slog.LevelDebug - 4,
	zerolog.DebugLevel: slog.LevelDebug,
	zerolog.InfoLevel:  slog.LevelInfo,
	zerolog.WarnLevel:  slog.LevelWarn,
	zerolog.ErrorLevel: slog.LevelError,
	zerolog.FatalLevel: slogtint.LevelCritical,
	zerolog.PanicLevel: slogtint.LevelCritical + 4,
}

// Level returns the slog level of a zerolog level name. Unknown names report false.
func Level(name string) (slog.Level, bool) {
	zl, err := zerolog.ParseLevel(name)
	if err != nil {
		return 0, false
	}
	lvl, ok := levels[zl]
	return lvl, ok
}

// Intercept returns a zerolog.ConsoleWriter FormatPrepare function that styles the message of each event
// according to p. Events without a message or with an unknown level are left untouched.
func Intercept(p slogtint.Profile) func(map[string]any) error {
	return InterceptWithReset(p, slogtint.ResetSequence)
}

// InterceptWithReset works like Intercept but appends reset instead of slogtint.ResetSequence.
func InterceptWithReset(p slogtint.Profile, reset string) func(map[string]any) error {
	styler := slogtint.NewStyler(p, reset)
	return func(evt map[string]any) error {
		msg, ok := evt[zerolog.MessageFieldName].(string)
		if !ok {
			return nil
		}
		name, _ := evt[zerolog.LevelFieldName].(string)
		lvl, ok := Level(name)
		if !ok {
			return nil
		}
		evt[zerolog.MessageFieldName] = styler.Decorate(lvl, msg)
		return nil
	}
}

// NewConsoleWriter returns a zerolog.ConsoleWriter writing to out that styles messages according to p.
// Unless an option sets FormatMessage, messages are written as is, so that only p decides their style.
func NewConsoleWriter(out io.Writer, p slogtint.Profile, options ...func(w *zerolog.ConsoleWriter)) zerolog.ConsoleWriter {
	w := zerolog.NewConsoleWriter(options...)
	w.Out = out
	w.FormatPrepare = Intercept(p)
	if w.FormatMessage == nil {
		w.FormatMessage = formatMessage
	}
	return w
}

func formatMessage(i any) string {
	if i == nil {
		return ""
	}
	return fmt.Sprint(i)
}
