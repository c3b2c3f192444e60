// Package bump sends open tasks to the end of the open list.
package bump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/printers"
	"tableflip.dev/ivy/pkg/store"
	"tableflip.dev/ivy/pkg/task"
)

type Bump struct {
	Refs []string

	Persistence store.Persistence
	Out         io.Writer
}

// Do bumps each referenced task. Refs are de-duplicated and processed
// from the highest open-list position down, so argument order never
// matters and one bump cannot shift the positions the other refs meant.
func (b *Bump) Do(ctx context.Context) error {
	if b.Persistence == nil {
		return errors.New("can not bump, no persistence")
	}
	if len(b.Refs) == 0 {
		return &task.ValidationError{Msg: "bump needs at least one task number or ID"}
	}
	st, err := b.Persistence.Load()
	if err != nil {
		return err
	}

	position := make(map[string]int, len(st.Tasks.Open))
	for i, t := range st.Tasks.Open {
		position[t.ID] = i
	}
	ids := make([]string, 0, len(b.Refs))
	seen := make(map[string]bool, len(b.Refs))
	for _, arg := range b.Refs {
		t, err := st.Tasks.ResolveOpen(task.ParseRef(arg))
		if err != nil {
			return err
		}
		if !seen[t.ID] {
			seen[t.ID] = true
			ids = append(ids, t.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return position[ids[i]] > position[ids[j]]
	})

	out := b.Out
	if out == nil {
		out = color.Output
	}
	for _, id := range ids {
		t, err := st.Tasks.Bump(task.ByID(id))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "✅ Bumped '%s'!\n", t.Description)
	}
	if err := b.Persistence.Save(st); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Styles: st.Styles, Out: b.Out}
	pp.Open(st.Tasks.PriorityView(nil), st.Tasks.Backlog(nil))
	return nil
}
