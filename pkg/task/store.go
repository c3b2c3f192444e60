package task

import "strings"

// PriorityViewSize caps the default view at six tasks, per the Ivy Lee
// method. The open list itself may grow past six.
const PriorityViewSize = 6

// List is an ordered sequence of tasks. For the open list the order is the
// priority order: index 0 is the next task to work.
type List []*Task

// Store holds the full in-memory task state: the open list in priority
// order and the done archive in sweep order.
type Store struct {
	Open List `yaml:"open"`
	Done List `yaml:"done"`
}

// EditSpec is a partial update for Edit. Nil fields are left unchanged.
// A tag appearing in both Add and Remove ends up removed.
type EditSpec struct {
	Description *string
	Note        *string
	Add         []string
	Remove      []string
}

func (s *Store) takenIDs() map[string]bool {
	taken := make(map[string]bool, len(s.Open)+len(s.Done))
	for _, t := range s.Open {
		taken[t.ID] = true
	}
	for _, t := range s.Done {
		taken[t.ID] = true
	}
	return taken
}

// Add appends a new open task to the end of the open list.
func (s *Store) Add(description, note string, tags []string) (*Task, error) {
	t, err := New(description, s.takenIDs())
	if err != nil {
		return nil, err
	}
	t.Note = note
	for _, tag := range tags {
		t.AddTag(tag)
	}
	s.Open = append(s.Open, t)
	return t, nil
}

// resolveOpen turns a ref into an index into the open list.
func (s *Store) resolveOpen(ref Ref) (int, error) {
	if ref.IsIndex() {
		if ref.index < 1 || ref.index > len(s.Open) {
			return 0, &NotFoundError{Ref: ref.String()}
		}
		return ref.index - 1, nil
	}
	for i, t := range s.Open {
		if t.ID == ref.id {
			return i, nil
		}
	}
	return 0, &NotFoundError{Ref: ref.String()}
}

// ResolveOpen returns the open task a ref addresses, without mutating
// anything.
func (s *Store) ResolveOpen(ref Ref) (*Task, error) {
	i, err := s.resolveOpen(ref)
	if err != nil {
		return nil, err
	}
	return s.Open[i], nil
}

// Find looks a task up by ID in either collection.
func (s *Store) Find(id string) (*Task, bool) {
	for _, t := range s.Open {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range s.Done {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// FirstUnfinished is the ref of the first open task not yet marked
// finished, used when finish is called without an argument.
func (s *Store) FirstUnfinished() (Ref, bool) {
	for i, t := range s.Open {
		if !t.Finished {
			return ByIndex(i + 1), true
		}
	}
	return Ref{}, false
}

// Finish marks the referenced open task finished. The task keeps its
// position until the next sweep.
func (s *Store) Finish(ref Ref) (*Task, error) {
	i, err := s.resolveOpen(ref)
	if err != nil {
		return nil, err
	}
	s.Open[i].Finish()
	return s.Open[i], nil
}

// Sweep moves every finished task from open to the end of done, keeping
// the relative order of moved and unmoved tasks alike. It returns the
// number of tasks moved; moving nothing is not an error.
func (s *Store) Sweep() int {
	kept := s.Open[:0]
	moved := 0
	for _, t := range s.Open {
		if t.Finished {
			s.Done = append(s.Done, t)
			moved++
		} else {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.Open); i++ {
		s.Open[i] = nil
	}
	s.Open = kept
	return moved
}

// Bump sends the referenced open task to the end of the open list. Bumping
// the last task is a no-op.
func (s *Store) Bump(ref Ref) (*Task, error) {
	i, err := s.resolveOpen(ref)
	if err != nil {
		return nil, err
	}
	t := s.Open[i]
	s.Open = append(s.Open[:i], s.Open[i+1:]...)
	s.Open = append(s.Open, t)
	return t, nil
}

// Move places the task at from immediately in front of the task at to.
// Both refs must resolve to open tasks; resolving to the same task is a
// ValidationError.
func (s *Store) Move(from, to Ref) (moved, displaced *Task, err error) {
	fi, err := s.resolveOpen(from)
	if err != nil {
		return nil, nil, err
	}
	ti, err := s.resolveOpen(to)
	if err != nil {
		return nil, nil, err
	}
	if fi == ti {
		return nil, nil, &ValidationError{Msg: "cannot move a task in front of itself"}
	}
	if fi < ti {
		ti--
	}
	t := s.Open[fi]
	s.Open = append(s.Open[:fi], s.Open[fi+1:]...)
	s.Open = append(s.Open, nil)
	copy(s.Open[ti+1:], s.Open[ti:])
	s.Open[ti] = t
	return t, s.Open[ti+1], nil
}

// Edit applies a partial update to the task with the given ID, open or
// done.
func (s *Store) Edit(id string, spec EditSpec) (*Task, error) {
	t, ok := s.Find(id)
	if !ok {
		return nil, &NotFoundError{Ref: ByID(id).String()}
	}
	if spec.Description != nil {
		desc, ok := trimNonEmpty(*spec.Description)
		if !ok {
			return nil, &ValidationError{Msg: "task description must not be empty"}
		}
		t.Description = desc
	}
	if spec.Note != nil {
		t.Note = *spec.Note
	}
	for _, tag := range spec.Add {
		t.AddTag(tag)
	}
	for _, tag := range spec.Remove {
		t.RemoveTag(tag)
	}
	return t, nil
}

// Remove deletes the task with the given ID from whichever collection
// holds it. There is no undo.
func (s *Store) Remove(id string) (*Task, error) {
	for i, t := range s.Open {
		if t.ID == id {
			s.Open = append(s.Open[:i], s.Open[i+1:]...)
			return t, nil
		}
	}
	for i, t := range s.Done {
		if t.ID == id {
			s.Done = append(s.Done[:i], s.Done[i+1:]...)
			return t, nil
		}
	}
	return nil, &NotFoundError{Ref: ByID(id).String()}
}

// PriorityView is the default rendering: the first six open tasks that
// pass the filter, in priority order. The open list is not mutated.
func (s *Store) PriorityView(f Filter) List {
	view := make(List, 0, PriorityViewSize)
	for _, t := range s.Open {
		if !f.Match(t) {
			continue
		}
		if len(view) == PriorityViewSize {
			break
		}
		view = append(view, t)
	}
	return view
}

// Backlog counts open tasks that pass the filter but fall outside the
// priority view.
func (s *Store) Backlog(f Filter) int {
	n := 0
	for _, t := range s.Open {
		if f.Match(t) {
			n++
		}
	}
	if n <= PriorityViewSize {
		return 0
	}
	return n - PriorityViewSize
}

// ListView returns every task passing the filter: open tasks in priority
// order, then done tasks in sweep order. The flags narrow the output to a
// single collection.
func (s *Store) ListView(f Filter, openOnly, doneOnly bool) (open, done List) {
	both := openOnly == doneOnly
	if openOnly || both {
		for _, t := range s.Open {
			if f.Match(t) {
				open = append(open, t)
			}
		}
	}
	if doneOnly || both {
		for _, t := range s.Done {
			if f.Match(t) {
				done = append(done, t)
			}
		}
	}
	return open, done
}

func trimNonEmpty(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
