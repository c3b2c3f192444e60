// Package sweep archives finished tasks to the done list.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/printers"
	"tableflip.dev/ivy/pkg/store"
)

type Sweep struct {
	Persistence store.Persistence
	Out         io.Writer
}

func (s *Sweep) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not sweep, no persistence")
	}
	st, err := s.Persistence.Load()
	if err != nil {
		return err
	}

	moved := st.Tasks.Sweep()
	if err := s.Persistence.Save(st); err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}
	switch moved {
	case 0:
		_, _ = fmt.Fprintln(out, "Nothing to sweep")
	default:
		_, _ = fmt.Fprintf(out, "✅ Swept %d finished task(s) into the done list\n", moved)
	}
	pp := printers.PrettyPrint{Styles: st.Styles, Out: s.Out}
	pp.Open(st.Tasks.PriorityView(nil), st.Tasks.Backlog(nil))
	return nil
}
