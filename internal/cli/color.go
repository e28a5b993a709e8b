package cli

import (
	"regexp"

	"github.com/fatih/color"
)

var markupRe = regexp.MustCompile(`^<fg=(\w+)>\((.*)\)</>$`)

var colorByName = map[string]*color.Color{
	"black":   color.New(color.FgBlack),
	"red":     color.New(color.FgRed),
	"green":   color.New(color.FgGreen),
	"yellow":  color.New(color.FgYellow),
	"blue":    color.New(color.FgBlue),
	"magenta": color.New(color.FgMagenta),
	"cyan":    color.New(color.FgCyan),
	"white":   color.New(color.FgWhite),
}

// renderANSI converts <fg=COLOR>(TEXT)</> markup into ANSI escapes.
// Unknown color names drop the markup and keep the text; undecorated
// strings pass through unchanged.
func renderANSI(s string) string {
	m := markupRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	c, ok := colorByName[m[1]]
	if !ok {
		return m[2]
	}
	return c.Sprint(m[2])
}
