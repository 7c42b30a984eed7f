package slogtint

import (
	"log/slog"

	"github.com/fatih/color"
)

// Names of the built-in profiles.
const (
	ProfileDefault = "default"
	ProfileSimple  = "simple"
	ProfileDim     = "dim"
	ProfileNone    = "none"
)

// BuiltinProfiles returns a new set of the built-in profiles. The caller owns the returned value.
func BuiltinProfiles() Profiles {
	return Profiles{
		ProfileDefault: {
			LevelCritical:   Style(color.BgBlack, color.FgRed, color.Bold),
			slog.LevelError: Style(color.BgBlack, color.FgWhite, color.Bold),
			slog.LevelWarn:  Style(color.FgRed, color.Bold),
			slog.LevelInfo:  "",
			slog.LevelDebug: Style(color.Faint),
			LevelNotSet:     ResetSequence,
		},
		ProfileSimple: {
			LevelCritical:   Style(color.FgRed, color.Bold),
			slog.LevelError: Style(color.FgRed, color.Bold),
			slog.LevelWarn:  Style(color.FgMagenta, color.Bold),
			slog.LevelInfo:  Style(color.FgGreen, color.Bold),
			slog.LevelDebug: Style(color.FgGreen),
			LevelNotSet:     ResetSequence,
		},
		ProfileDim: {
			LevelNotSet + 1: Style(color.Faint),
			LevelNotSet:     ResetSequence,
		},
		ProfileNone: {
			LevelNotSet: ResetSequence,
		},
	}
}

// DefaultProfile returns a new copy of the "default" profile.
func DefaultProfile() Profile {
	return BuiltinProfiles()[ProfileDefault]
}
