// Package list renders every task as a table, filterable by tags and
// collection.
package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/ivy/pkg/printers"
	"tableflip.dev/ivy/pkg/store"
	"tableflip.dev/ivy/pkg/task"
)

type List struct {
	Filter   []string
	OpenOnly bool
	DoneOnly bool

	Persistence store.Persistence
	Out         io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	f, err := task.ParseFilter(l.Filter)
	if err != nil {
		return err
	}
	st, err := l.Persistence.Load()
	if err != nil {
		return err
	}

	open, done := st.Tasks.ListView(f, l.OpenOnly, l.DoneOnly)
	printers.Table(l.Out, open, done)
	return nil
}
