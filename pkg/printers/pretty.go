package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/tags"
	"tableflip.dev/ivy/pkg/task"
)

// PrettyPrint renders the numbered priority view.
type PrettyPrint struct {
	ShowID bool
	Styles tags.Registry

	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// Task prints one task as a numbered block: description line, optional
// note line, then age and tags.
func (pp *PrettyPrint) Task(number int, t *task.Task) {
	w := pp.out()

	num := color.New(color.Faint, color.Bold)
	desc := color.New(color.Bold)
	if t.Finished {
		desc = color.New(color.Bold, color.CrossedOut)
	}

	_, _ = fmt.Fprintf(w, " %s %s", num.Sprintf("%3d.", number), desc.Sprint(t.Description))
	if pp.ShowID {
		_, _ = color.New(color.FgHiYellow, color.Faint).Fprintf(w, "  [%s]", t.ID)
	}
	if since, ok := t.SinceFinished(); ok {
		done := color.New(color.FgGreen, color.Underline)
		_, _ = fmt.Fprintf(w, " ➡ %s", done.Sprintf("Completed %s", Age(since)))
	}
	_, _ = fmt.Fprintln(w)

	if t.Note != "" {
		_, _ = fmt.Fprintf(w, "      %s\n", color.New(color.Italic).Sprint(t.Note))
	}

	_, _ = fmt.Fprintf(w, "      %s ", color.New(color.Faint, color.Underline).Sprint(Age(t.Age())))
	for _, tag := range t.Tags {
		_, _ = fmt.Fprintf(w, "%s ", pp.Styles.Colorize(tag, tag))
	}
	_, _ = fmt.Fprintln(w)
}

// Open prints the priority view followed by a faint backlog count when
// more tasks pass the filter than the view shows.
func (pp *PrettyPrint) Open(view task.List, backlog int) {
	w := pp.out()

	if len(view) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, " none")
		return
	}
	for i, t := range view {
		pp.Task(i+1, t)
	}
	if backlog > 0 {
		_, _ = fmt.Fprintln(w)
		foot := color.New(color.Faint, color.Italic)
		switch backlog {
		case 1:
			_, _ = foot.Fprintln(w, "      1 task in backlog")
		default:
			_, _ = foot.Fprintf(w, "      %d tasks in backlog\n", backlog)
		}
	}
}

// StyleTable prints every styled tag in its own style, with the raw
// colour names beside it.
func (pp *PrettyPrint) StyleTable(reg tags.Registry) {
	w := pp.out()
	for _, name := range reg.Names() {
		s := reg.Get(name)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", reg.Colorize(name, name), s.Fg, s.Bg)
	}
}
