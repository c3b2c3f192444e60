// Package tags maps tag names to display styles for the terminal.
package tags

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/task"
)

// None clears a previously set colour channel. Omitting a channel leaves
// it unchanged.
const None = "none"

// DefaultFg is the foreground a tag gets when only its background is
// styled.
const DefaultFg = "green"

// Style is the persisted look of one tag. Empty strings mean unset.
type Style struct {
	Fg string `yaml:"fg,omitempty"`
	Bg string `yaml:"bg,omitempty"`
}

// Registry maps tag names to styles. Entries live independently of tasks:
// styling a tag no task uses is fine, and removing a task never removes
// its style.
type Registry map[string]Style

var fgColors = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

var bgColors = map[string]color.Attribute{
	"black":      color.BgBlack,
	"red":        color.BgRed,
	"green":      color.BgGreen,
	"yellow":     color.BgYellow,
	"blue":       color.BgBlue,
	"magenta":    color.BgMagenta,
	"cyan":       color.BgCyan,
	"white":      color.BgWhite,
	"hi-black":   color.BgHiBlack,
	"hi-red":     color.BgHiRed,
	"hi-green":   color.BgHiGreen,
	"hi-yellow":  color.BgHiYellow,
	"hi-blue":    color.BgHiBlue,
	"hi-magenta": color.BgHiMagenta,
	"hi-cyan":    color.BgHiCyan,
	"hi-white":   color.BgHiWhite,
}

// ColorNames lists every accepted colour name, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(fgColors))
	for name := range fgColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validColor(name string) bool {
	_, ok := fgColors[name]
	return ok
}

// Set upserts the style for a tag. An empty channel argument leaves that
// channel unchanged, None clears it. A brand new entry with no foreground
// gets DefaultFg.
func (r Registry) Set(tag, fg, bg string) error {
	if tag == "" {
		return &task.ValidationError{Msg: "tag name must not be empty"}
	}
	if fg == "" && bg == "" {
		return &task.ValidationError{Msg: "set at least one of fg and bg"}
	}
	for _, c := range []string{fg, bg} {
		if c != "" && c != None && !validColor(c) {
			return &task.ValidationError{
				Msg: fmt.Sprintf("unknown colour %q, pick one of %v or %q", c, ColorNames(), None),
			}
		}
	}

	s, ok := r[tag]
	if !ok {
		s = Style{Fg: DefaultFg}
	}
	switch fg {
	case "":
	case None:
		s.Fg = ""
	default:
		s.Fg = fg
	}
	switch bg {
	case "":
	case None:
		s.Bg = ""
	default:
		s.Bg = bg
	}
	r[tag] = s
	return nil
}

// Get returns the style for a tag, or the zero style when unstyled.
func (r Registry) Get(tag string) Style {
	return r[tag]
}

// Names lists every styled tag, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colorize renders text in the tag's style. Unstyled tags come back
// unchanged.
func (r Registry) Colorize(tag, text string) string {
	s, ok := r[tag]
	if !ok {
		return text
	}
	attrs := make([]color.Attribute, 0, 2)
	if a, ok := fgColors[s.Fg]; ok {
		attrs = append(attrs, a)
	}
	if a, ok := bgColors[s.Bg]; ok {
		attrs = append(attrs, a)
	}
	if len(attrs) == 0 {
		return text
	}
	return color.New(attrs...).Sprint(text)
}
