package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ivy/pkg/task"
)

// Table renders the full list view as a table: open tasks first in
// priority order, numbered, then done tasks in sweep order.
func Table(w io.Writer, open, done task.List) {
	if w == nil {
		w = color.Output
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 50
	tbl.AddRow("ID", "TASK#", "DESCRIPTION", "NOTE", "STATUS", "CREATED", "FINISHED", "TAGS")

	for i, t := range open {
		status := "todo"
		finished := ""
		if since, ok := t.SinceFinished(); ok {
			status = "marked"
			finished = Age(since)
		}
		tbl.AddRow(t.ID, fmt.Sprintf("%d", i+1), t.Description, t.Note, status, Age(t.Age()), finished, strings.Join(t.Tags, ","))
	}
	for _, t := range done {
		finished := ""
		if since, ok := t.SinceFinished(); ok {
			finished = Age(since)
		}
		tbl.AddRow(t.ID, "", t.Description, t.Note, "done", Age(t.Age()), finished, strings.Join(t.Tags, ","))
	}

	_, _ = fmt.Fprintln(w, tbl)
}

// Age renders a duration as its largest round unit, "3d ago" style.
func Age(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", d/(24*time.Hour))
	case d >= time.Hour:
		return fmt.Sprintf("%dh ago", d/time.Hour)
	case d >= time.Minute:
		return fmt.Sprintf("%dm ago", d/time.Minute)
	default:
		return "just now"
	}
}
