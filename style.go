package slogtint

import (
	"strings"

	"github.com/fatih/color"
)

// ResetSequence restores the default terminal rendering.
const ResetSequence = "\x1b[0m"

const escape = "\x1b"

// attributeNames are the attribute names accepted by ParseStyle.
var attributeNames = map[string]color.Attribute{
	"reset":       color.Reset,
	"reset_all":   color.Reset,
	"bold":        color.Bold,
	"bright":      color.Bold,
	"faint":       color.Faint,
	"dim":         color.Faint,
	"italic":      color.Italic,
	"underline":   color.Underline,
	"blink":       color.BlinkSlow,
	"blink_slow":  color.BlinkSlow,
	"blink_rapid": color.BlinkRapid,
	"reverse":     color.ReverseVideo,
	"concealed":   color.Concealed,
	"crossed_out": color.CrossedOut,

	"fg_black":   color.FgBlack,
	"fg_red":     color.FgRed,
	"fg_green":   color.FgGreen,
	"fg_yellow":  color.FgYellow,
	"fg_blue":    color.FgBlue,
	"fg_magenta": color.FgMagenta,
	"fg_cyan":    color.FgCyan,
	"fg_white":   color.FgWhite,

	"fg_hi_black":   color.FgHiBlack,
	"fg_hi_red":     color.FgHiRed,
	"fg_hi_green":   color.FgHiGreen,
	"fg_hi_yellow":  color.FgHiYellow,
	"fg_hi_blue":    color.FgHiBlue,
	"fg_hi_magenta": color.FgHiMagenta,
	"fg_hi_cyan":    color.FgHiCyan,
	"fg_hi_white":   color.FgHiWhite,

	"bg_black":   color.BgBlack,
	"bg_red":     color.BgRed,
	"bg_green":   color.BgGreen,
	"bg_yellow":  color.BgYellow,
	"bg_blue":    color.BgBlue,
	"bg_magenta": color.BgMagenta,
	"bg_cyan":    color.BgCyan,
	"bg_white":   color.BgWhite,

	"bg_hi_black":   color.BgHiBlack,
	"bg_hi_red":     color.BgHiRed,
	"bg_hi_green":   color.BgHiGreen,
	"bg_hi_yellow":  color.BgHiYellow,
	"bg_hi_blue":    color.BgHiBlue,
	"bg_hi_magenta": color.BgHiMagenta,
	"bg_hi_cyan":    color.BgHiCyan,
	"bg_hi_white":   color.BgHiWhite,
}

// Style renders the given attributes as a single SGR sequence, e.g. Style(color.FgRed, color.Bold) is "\x1b[31;1m".
// Without attributes it returns an empty string.
func Style(attrs ...color.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var sb strings.Builder
	c := color.New(attrs...)
	// Colors are switched off globally when stdout is no terminal, but the sequence is needed regardless.
	c.EnableColor()
	c.SetWriter(&sb)
	return sb.String()
}

// ParseStyle converts a style from a config file into a terminal sequence.
// The value is either empty, a raw escape sequence, or a list of attribute names separated by spaces,
// commas or plus signs, e.g. "bg_black fg_red bold".
func ParseStyle(value string) (string, error) {
	if value == "" || strings.HasPrefix(value, escape) {
		return value, nil
	}
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '+' || r == '\t'
	})
	attrs := make([]color.Attribute, 0, len(fields))
	for _, f := range fields {
		a, ok := attributeNames[strings.ToLower(f)]
		if !ok {
			return "", configErrorf("", value, "unknown style attribute %q", f)
		}
		attrs = append(attrs, a)
	}
	return Style(attrs...), nil
}
