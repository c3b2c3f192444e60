// Package remove deletes a task outright from either collection.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/store"
)

type Remove struct {
	ID string

	Persistence store.Persistence
	Out         io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	st, err := r.Persistence.Load()
	if err != nil {
		return err
	}

	t, err := st.Tasks.Remove(r.ID)
	if err != nil {
		return err
	}
	if err := r.Persistence.Save(st); err != nil {
		return err
	}

	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "✅ Removed task %s ('%s')\n", t.ID, t.Description)
	return nil
}
