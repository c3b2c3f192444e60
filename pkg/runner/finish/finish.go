// Package finish marks open tasks finished in place; sweep archives them
// later.
package finish

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

type Finish struct {
	// Refs addresses the tasks to finish, by number or ID. Empty means
	// the first open task not yet finished.
	Refs []string

	Persistence store.Persistence
	Out         io.Writer
}

func (f *Finish) Do(ctx context.Context) error {
	if f.Persistence == nil {
		return errors.New("can not finish, no persistence")
	}
	st, err := f.Persistence.Load()
	if err != nil {
		return err
	}

	refs := make([]task.Ref, 0, len(f.Refs))
	for _, arg := range f.Refs {
		refs = append(refs, task.ParseRef(arg))
	}
	if len(refs) == 0 {
		ref, ok := st.Tasks.FirstUnfinished()
		if !ok {
			return &task.NotFoundError{Ref: "an unfinished open task"}
		}
		refs = append(refs, ref)
	}

	out := f.Out
	if out == nil {
		out = color.Output
	}
	for _, ref := range refs {
		t, err := st.Tasks.Finish(ref)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "✅ Finished '%s'!\n", t.Description)
	}
	if err := f.Persistence.Save(st); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Styles: st.Styles, Out: f.Out}
	pp.Open(st.Tasks.PriorityView(nil), st.Tasks.Backlog(nil))
	return nil
}
