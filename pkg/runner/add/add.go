// Package add appends a new task to the end of the open list.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/printers"
	"tableflip.dev/ivy/pkg/store"
)

type Add struct {
	Description string
	Note        string
	Tags        []string

	Persistence store.Persistence
	Out         io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	st, err := a.Persistence.Load()
	if err != nil {
		return err
	}

	t, err := st.Tasks.Add(a.Description, a.Note, a.Tags)
	if err != nil {
		return err
	}
	if err := a.Persistence.Save(st); err != nil {
		return err
	}

	out := a.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "✅ Added new task! ID: %s\n", t.ID)
	pp := printers.PrettyPrint{Styles: st.Styles, Out: a.Out}
	pp.Task(len(st.Tasks.Open), t)
	return nil
}
