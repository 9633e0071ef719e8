package prompt

import (
	"strings"

	"github.com/fatih/color"
)

// fallbackColor is used for unrecognized color names.
const fallbackColor = "bold_green"

var colorAttrs = map[string][]color.Attribute{
	"black":   {color.FgBlack},
	"red":     {color.FgRed},
	"green":   {color.FgGreen},
	"yellow":  {color.FgYellow},
	"blue":    {color.FgBlue},
	"purple":  {color.FgMagenta},
	"magenta": {color.FgMagenta},
	"cyan":    {color.FgCyan},
	"white":   {color.FgWhite},

	"bright_black":   {color.FgHiBlack},
	"gray":           {color.FgHiBlack},
	"bright_red":     {color.FgHiRed},
	"bright_green":   {color.FgHiGreen},
	"bright_yellow":  {color.FgHiYellow},
	"bright_blue":    {color.FgHiBlue},
	"bright_magenta": {color.FgHiMagenta},
	"bright_purple":  {color.FgHiMagenta},
	"bright_cyan":    {color.FgHiCyan},
	"bright_white":   {color.FgHiWhite},

	"bold_black":   {color.Bold, color.FgBlack},
	"bold_red":     {color.Bold, color.FgRed},
	"bold_green":   {color.Bold, color.FgGreen},
	"bold_yellow":  {color.Bold, color.FgYellow},
	"bold_blue":    {color.Bold, color.FgBlue},
	"bold_magenta": {color.Bold, color.FgMagenta},
	"bold_purple":  {color.Bold, color.FgMagenta},
	"bold_cyan":    {color.Bold, color.FgCyan},
	"bold_white":   {color.Bold, color.FgWhite},
}

var (
	resetSeq  = sequence(color.Reset)
	aheadSeq  = sequence(color.Bold, color.FgYellow)
	behindSeq = sequence(color.Bold, color.FgMagenta)
)

// sequence returns the SGR escape sequence for attrs. Color output is
// forced on since the prompt is consumed by the shell, not a terminal.
func sequence(attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()

	var b strings.Builder
	c.SetWriter(&b)
	return b.String()
}

// ANSI returns the escape sequence for a color name. Unknown names map to
// bold green.
func ANSI(name string) string {
	attrs, ok := colorAttrs[name]
	if !ok {
		attrs = colorAttrs[fallbackColor]
	}
	return sequence(attrs...)
}

// bashEscape wraps a non-printing sequence for use in PS1.
func bashEscape(seq string) string {
	return `\[` + seq + `\]`
}

// paint wraps text in the escaped sequence and an escaped reset.
func paint(seq, text string) string {
	return bashEscape(seq) + text + bashEscape(resetSeq)
}
