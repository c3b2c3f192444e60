package add

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

func TestAddAppendsAndSaves(t *testing.T) {
	color.NoColor = true
	p := &memPersistence{}

	var buf bytes.Buffer
	a := Add{
		Description: "Write report",
		Note:        "for the board",
		Tags:        []string{"work"},
		Persistence: p,
		Out:         &buf,
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}

	if p.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", p.saves)
	}
	if len(p.st.Tasks.Open) != 1 {
		t.Fatalf("open = %d tasks", len(p.st.Tasks.Open))
	}
	tk := p.st.Tasks.Open[0]
	if tk.Note != "for the board" || !tk.HasTag("work") {
		t.Fatalf("task fields not applied: %+v", tk)
	}
	if !strings.Contains(buf.String(), "Added new task! ID: "+tk.ID) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestAddEmptyDescriptionDoesNotSave(t *testing.T) {
	p := &memPersistence{}
	a := Add{Description: "  ", Persistence: p, Out: &bytes.Buffer{}}

	err := a.Do(context.Background())
	var verr *task.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if p.saves != 0 {
		t.Fatal("failed add must not save")
	}
}

func TestAddNoPersistence(t *testing.T) {
	a := Add{Description: "x"}
	if err := a.Do(context.Background()); err == nil {
		t.Fatal("expected error without persistence")
	}
}
