package tags

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/ivy/pkg/task"
)

func TestSetForeground(t *testing.T) {
	r := Registry{}
	if err := r.Set("work", "cyan", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := r.Get("work"); got.Fg != "cyan" || got.Bg != "" {
		t.Fatalf("style = %+v", got)
	}
}

func TestSetBackgroundOnlyDefaultsForeground(t *testing.T) {
	r := Registry{}
	if err := r.Set("urgent", "", "red"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := r.Get("urgent"); got.Fg != DefaultFg || got.Bg != "red" {
		t.Fatalf("style = %+v", got)
	}
}

func TestSetOmittedChannelUnchanged(t *testing.T) {
	r := Registry{}
	if err := r.Set("work", "cyan", "black"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := r.Set("work", "blue", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := r.Get("work"); got.Fg != "blue" || got.Bg != "black" {
		t.Fatalf("omitted bg changed: %+v", got)
	}
}

func TestSetNoneClears(t *testing.T) {
	r := Registry{}
	if err := r.Set("work", "cyan", "black"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := r.Set("work", "", None); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := r.Get("work"); got.Fg != "cyan" || got.Bg != "" {
		t.Fatalf("none must clear only bg: %+v", got)
	}
}

func TestSetValidation(t *testing.T) {
	r := Registry{}
	var verr *task.ValidationError
	if err := r.Set("work", "", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty set, got %v", err)
	}
	if err := r.Set("work", "plaid", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown colour, got %v", err)
	}
	if err := r.Set("", "red", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty tag, got %v", err)
	}
	if len(r) != 0 {
		t.Fatalf("failed sets must not create entries: %v", r)
	}
}

func TestStylesOutliveTasks(t *testing.T) {
	// Styling a tag no task uses is legal; nothing garbage-collects it.
	r := Registry{}
	if err := r.Set("phantom", "magenta", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := r["phantom"]; !ok {
		t.Fatal("expected entry for unused tag")
	}
}

func TestNamesSorted(t *testing.T) {
	r := Registry{}
	for _, tag := range []string{"zeta", "alpha", "mid"} {
		if err := r.Set(tag, "red", ""); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	names := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestColorize(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	r := Registry{}
	if err := r.Set("work", "cyan", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := r.Colorize("work", "work"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI styling, got %q", got)
	}
	if got := r.Colorize("unstyled", "unstyled"); got != "unstyled" {
		t.Fatalf("unstyled tag must pass through, got %q", got)
	}
}
