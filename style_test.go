package slogtint_test

import (
	"testing"

	"github.com/apperia-de/slogtint"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	assert.Equal(t, "", slogtint.Style())
	assert.Equal(t, "\x1b[31;1m", slogtint.Style(color.FgRed, color.Bold))
	assert.Equal(t, "\x1b[40;37;1m", slogtint.Style(color.BgBlack, color.FgWhite, color.Bold))
	assert.Equal(t, slogtint.ResetSequence, slogtint.Style(color.Reset))
}

func TestStyle_IgnoresNoColor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	assert.Equal(t, "\x1b[2m", slogtint.Style(color.Faint))
}

func TestParseStyle(t *testing.T) {
	tests := map[string]string{
		"":                     "",
		"\x1b[35m":             "\x1b[35m",
		"bold":                 "\x1b[1m",
		"BG_BLACK fg_red bold": "\x1b[40;31;1m",
		"fg_red,bold":          "\x1b[31;1m",
		"fg_red + bright":      "\x1b[31;1m",
		"dim":                  "\x1b[2m",
		"reset_all":            slogtint.ResetSequence,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := slogtint.ParseStyle(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseStyle_UnknownAttribute(t *testing.T) {
	_, err := slogtint.ParseStyle("bold fg_purple")
	assert.ErrorIs(t, err, slogtint.ErrConfiguration)
	assert.ErrorContains(t, err, "fg_purple")
}

func TestResetSequence_IsAbsorptive(t *testing.T) {
	s := slogtint.NewStyler(slogtint.DefaultProfile(), slogtint.ResetSequence)
	once := s.Decorate(slogtint.LevelCritical, "hello")

	// Rendering resets all attributes, so a second reset leaves the terminal in the same state.
	twice := once + slogtint.ResetSequence
	assert.Equal(t, slogtint.ResetSequence, twice[len(twice)-len(slogtint.ResetSequence):])
	assert.Equal(t, stripSGR(once), stripSGR(twice))
}

// stripSGR removes all SGR sequences from s.
func stripSGR(s string) string {
	var out []rune
	inSeq := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inSeq = true
		case inSeq && r == 'm':
			inSeq = false
		case !inSeq:
			out = append(out, r)
		}
	}
	return string(out)
}
