// Package move reorders the open list by placing one task in front of
// another.
package move

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/printers"
	"tableflip.dev/ivy/pkg/store"
	"tableflip.dev/ivy/pkg/task"
)

type Move struct {
	From string
	To   string

	Persistence store.Persistence
	Out         io.Writer
}

func (m *Move) Do(ctx context.Context) error {
	if m.Persistence == nil {
		return errors.New("can not move, no persistence")
	}
	st, err := m.Persistence.Load()
	if err != nil {
		return err
	}

	moved, displaced, err := st.Tasks.Move(task.ParseRef(m.From), task.ParseRef(m.To))
	if err != nil {
		return err
	}
	if err := m.Persistence.Save(st); err != nil {
		return err
	}

	out := m.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "✅ Moved '%s' in front of '%s'!\n", moved.Description, displaced.Description)
	pp := printers.PrettyPrint{Styles: st.Styles, Out: m.Out}
	pp.Open(st.Tasks.PriorityView(nil), st.Tasks.Backlog(nil))
	return nil
}
