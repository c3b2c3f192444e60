package show

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/store"
	"tableflip.dev/ivy/pkg/task"
)

type memPersistence struct {
	st    *store.State
	saves int
}

func (m *memPersistence) Load() (*store.State, error) {
	if m.st == nil {
		m.st = store.NewState()
	}
	return m.st, nil
}

func (m *memPersistence) Save(st *store.State) error {
	m.st = st
	m.saves++
	return nil
}

func TestShowFiltersAndNeverSaves(t *testing.T) {
	color.NoColor = true
	p := &memPersistence{st: store.NewState()}
	if _, err := p.st.Tasks.Add("code task", "", []string{"code"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := p.st.Tasks.Add("other task", "", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var buf bytes.Buffer
	s := Show{Filter: []string{"+code"}, Persistence: p, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "code task") {
		t.Fatalf("missing matching task:\n%s", out)
	}
	if strings.Contains(out, "other task") {
		t.Fatalf("filtered task leaked:\n%s", out)
	}
	if p.saves != 0 {
		t.Fatal("show is read-only and must not save")
	}
}

func TestShowBadFilterToken(t *testing.T) {
	p := &memPersistence{}
	s := Show{Filter: []string{"code"}, Persistence: p, Out: &bytes.Buffer{}}

	err := s.Do(context.Background())
	var verr *task.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
