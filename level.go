package slogtint

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Levels beyond the ones defined by log/slog.
const (
	LevelCritical = slog.LevelError + 4
	// LevelNotSet is below every other level. A profile entry at LevelNotSet applies to all levels
	// not covered by a higher threshold.
	LevelNotSet = slog.Level(math.MinInt)
)

// Level names accepted by ParseLevel.
const (
	LogLevelDebug    = "DEBUG"
	LogLevelInfo     = "INFO"
	LogLevelWarn     = "WARN"
	LogLevelWarning  = "WARNING"
	LogLevelError    = "ERROR"
	LogLevelCritical = "CRITICAL"
	LogLevelNotSet   = "NOTSET"
)

var (
	levelMap = map[string]slog.Level{
		LogLevelDebug:    slog.LevelDebug,
		LogLevelInfo:     slog.LevelInfo,
		LogLevelWarn:     slog.LevelWarn,
		LogLevelWarning:  slog.LevelWarn,
		LogLevelError:    slog.LevelError,
		LogLevelCritical: LevelCritical,
	}
	levelRegex = regexp.MustCompile(`^([A-Z]+)(([+\-])(\d+))?$`)
)

// ParseLevel converts a level string to its slog.Level representation.
// It accepts plain integers ("10", "-4"), the names DEBUG, INFO, WARN, WARNING, ERROR, CRITICAL and NOTSET,
// and names followed by a +/- integer offset for levels that log/slog does not define.
// Example: DEBUG-2, ERROR+4 or NOTSET+1
func ParseLevel(level string) (slog.Level, error) {
	s := strings.ToUpper(strings.TrimSpace(level))
	if n, err := strconv.Atoi(s); err == nil {
		return slog.Level(n), nil
	}

	matches := levelRegex.FindStringSubmatch(s)
	if len(matches) != 5 {
		return 0, configErrorf(level, "", "invalid log level")
	}

	lvl, ok := levelMap[matches[1]]
	if matches[1] == LogLevelNotSet {
		lvl, ok = LevelNotSet, true
	}
	if !ok {
		return 0, configErrorf(level, "", "unknown log level name %q", matches[1])
	}

	if matches[4] != "" {
		nb, err := strconv.Atoi(matches[4])
		if err != nil {
			return 0, configErrorf(level, "", "invalid level offset: %w", err)
		}
		if matches[3] == "-" {
			if int(lvl) < math.MinInt+nb {
				return 0, configErrorf(level, "", "level offset out of range")
			}
			return lvl - slog.Level(nb), nil
		}
		if int(lvl) > math.MaxInt-nb {
			return 0, configErrorf(level, "", "level offset out of range")
		}
		return lvl + slog.Level(nb), nil
	}
	return lvl, nil
}

// LevelName returns a human-readable name of the level, relative to the closest standard level below it.
// Example: WARNING, ERROR+2, DEBUG-4
func LevelName(level slog.Level) string {
	if level == LevelNotSet {
		return LogLevelNotSet
	}
	base, name := slog.LevelDebug, LogLevelDebug
	for _, l := range []struct {
		level slog.Level
		name  string
	}{
		{LevelCritical, LogLevelCritical},
		{slog.LevelError, LogLevelError},
		{slog.LevelWarn, LogLevelWarning},
		{slog.LevelInfo, LogLevelInfo},
	} {
		if level >= l.level {
			base, name = l.level, l.name
			break
		}
	}
	if d := level - base; d != 0 {
		return fmt.Sprintf("%s%+d", name, d)
	}
	return name
}
