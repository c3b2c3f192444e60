package task

import (
	"fmt"
	"strconv"
)

// Ref addresses a task either by 1-based position in the open list or by
// ID. Exactly one of the two is set.
type Ref struct {
	index int
	id    string
}

// ByIndex addresses the open task at the given 1-based position.
func ByIndex(n int) Ref {
	return Ref{index: n}
}

// ByID addresses a task by its ID.
func ByID(id string) Ref {
	return Ref{id: id}
}

// ParseRef turns a command argument into a Ref. An argument consisting
// solely of ASCII digits is treated as a 1-based index into the open list;
// anything else is treated as an ID. A digit string too large for an int
// cannot be a real position, so it falls back to an ID as well.
func ParseRef(arg string) Ref {
	if arg == "" {
		return Ref{}
	}
	for _, r := range arg {
		if r < '0' || r > '9' {
			return ByID(arg)
		}
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return ByID(arg)
	}
	return ByIndex(n)
}

// IsIndex reports whether the ref addresses by position.
func (r Ref) IsIndex() bool {
	return r.id == ""
}

func (r Ref) String() string {
	if r.IsIndex() {
		return fmt.Sprintf("task number %d", r.index)
	}
	return fmt.Sprintf("task ID %s", r.id)
}
