// Package show renders the default priority view: the first six open
// tasks after filtering.
package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/ivy/pkg/printers"
	"tableflip.dev/ivy/pkg/store"
	"tableflip.dev/ivy/pkg/task"
)

type Show struct {
	Filter []string
	ShowID bool

	Persistence store.Persistence
	Out         io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	f, err := task.ParseFilter(s.Filter)
	if err != nil {
		return err
	}
	st, err := s.Persistence.Load()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID, Styles: st.Styles, Out: s.Out}
	pp.Open(st.Tasks.PriorityView(f), st.Tasks.Backlog(f))
	return nil
}
