package slogtint

import (
	"context"
	"log/slog"
)

// Profile maps level thresholds to terminal style sequences.
type Profile map[slog.Level]string

// Profiles holds named profiles, e.g. the ones returned by BuiltinProfiles.
type Profiles map[string]Profile

// EmitFunc writes a single record. It is the operation a Handler intercepts.
type EmitFunc func(ctx context.Context, r *slog.Record) error

type Config struct {
	Profile  string                       `yaml:"profile" toml:"profile"`                 // Name of the active profile.
	Reset    *string                      `yaml:"reset,omitempty" toml:"reset,omitempty"` // Reset override in style syntax.
	Profiles map[string]map[string]string `yaml:"profiles" toml:"profiles"`               // Additional or overriding profiles.
}

type HandlerOptions struct {
	Debug             bool
	Plain             bool // Pass records through without styling.
	Profile           string
	Profiles          Profiles
	Reset             *string
	Level             slog.Leveler // Minimum level of the stream handler built by NewConsoleHandler.
	Config            *Config
	ConfigFile        *string
	EnableFileWatcher bool
}
