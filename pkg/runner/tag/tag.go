// Package tag edits the display style of a tag. Styles live independently
// of tasks.
package tag

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/ivy/pkg/printers"
	"tableflip.dev/ivy/pkg/store"
)

type Tag struct {
	Tag string
	// Fg and Bg are colour names; empty leaves the channel unchanged,
	// "none" clears it.
	Fg string
	Bg string

	Persistence store.Persistence
	Out         io.Writer
}

func (t *Tag) Do(ctx context.Context) error {
	if t.Persistence == nil {
		return errors.New("can not tag, no persistence")
	}
	st, err := t.Persistence.Load()
	if err != nil {
		return err
	}

	if err := st.Styles.Set(t.Tag, t.Fg, t.Bg); err != nil {
		return err
	}
	if err := t.Persistence.Save(st); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Styles: st.Styles, Out: t.Out}
	pp.StyleTable(st.Styles)
	return nil
}
