// Package edit applies partial updates to a task, open or done.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/store"
	"tableflip.dev/ivy/pkg/task"
)

type Edit struct {
	ID          string
	Description *string
	Note        *string
	// Tags uses filter token syntax: +tag adds, /tag removes.
	Tags []string

	Persistence store.Persistence
	Out         io.Writer
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	f, err := task.ParseFilter(e.Tags)
	if err != nil {
		return err
	}
	st, err := e.Persistence.Load()
	if err != nil {
		return err
	}

	add, remove := f.Split()
	t, err := st.Tasks.Edit(e.ID, task.EditSpec{
		Description: e.Description,
		Note:        e.Note,
		Add:         add,
		Remove:      remove,
	})
	if err != nil {
		return err
	}
	if err := e.Persistence.Save(st); err != nil {
		return err
	}

	out := e.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "✅ Edited task %s\n", t.ID)
	return nil
}
