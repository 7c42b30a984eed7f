package slogtint

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
)

// ResolveStyle returns the style of the highest threshold in p that is less than or equal to level.
// If there is no such threshold, including for an empty profile, it returns an empty string.
func ResolveStyle(level slog.Level, p Profile) string {
	for _, lvl := range p.thresholds() {
		if level >= lvl {
			return p[lvl]
		}
	}
	return ""
}

// Thresholds returns the levels of the profile in ascending order.
func (p Profile) Thresholds() []slog.Level {
	return slices.Sorted(maps.Keys(p))
}

// thresholds returns the levels of the profile in descending order.
func (p Profile) thresholds() []slog.Level {
	lvls := p.Thresholds()
	slices.Reverse(lvls)
	return lvls
}

// Clone returns a copy of the profile that shares no state with p.
func (p Profile) Clone() Profile {
	if p == nil {
		return Profile{}
	}
	return maps.Clone(p)
}

// Clone returns a deep copy of the profiles.
func (ps Profiles) Clone() Profiles {
	c := make(Profiles, len(ps))
	for name, p := range ps {
		c[name] = p.Clone()
	}
	return c
}

// Names returns the profile names in sorted order.
func (ps Profiles) Names() []string {
	return slices.Sorted(maps.Keys(ps))
}

// NormalizeProfile builds a Profile from level names (or integers) mapped to styles in ParseStyle syntax.
// The first malformed key or style fails the whole profile.
func NormalizeProfile(raw map[string]string) (Profile, error) {
	p := make(Profile, len(raw))
	// Sorted, so that the reported error does not depend on map order.
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		lvl, err := ParseLevel(key)
		if err != nil {
			return nil, err
		}
		if _, ok := p[lvl]; ok {
			return nil, configErrorf(key, "", "duplicate threshold %s", LevelName(lvl))
		}
		style, err := ParseStyle(raw[key])
		if err != nil {
			var cerr *ConfigurationError
			if errors.As(err, &cerr) {
				return nil, &ConfigurationError{Key: key, Value: raw[key], Err: cerr.Err}
			}
			return nil, err
		}
		p[lvl] = style
	}
	return p, nil
}

// Styler is a compiled Profile. It is safe for concurrent use.
type Styler struct {
	levels []slog.Level // descending
	styles []string
	reset  string
}

// NewStyler compiles p for repeated resolution. Later changes to p do not affect the Styler.
func NewStyler(p Profile, reset string) *Styler {
	s := &Styler{reset: reset}
	for _, lvl := range p.thresholds() {
		s.levels = append(s.levels, lvl)
		s.styles = append(s.styles, p[lvl])
	}
	return s
}

// Style returns the same result as ResolveStyle for the compiled profile.
func (s *Styler) Style(level slog.Level) string {
	for i, lvl := range s.levels {
		if level >= lvl {
			return s.styles[i]
		}
	}
	return ""
}

// Decorate returns msg enclosed in the style for level and the reset sequence.
// The reset sequence is appended even if the style is empty.
func (s *Styler) Decorate(level slog.Level, msg string) string {
	return s.Style(level) + msg + s.reset
}

// Reset returns the reset sequence appended by Decorate.
func (s *Styler) Reset() string {
	return s.reset
}
