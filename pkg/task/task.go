package task

import (
	"strings"
	"time"
)

// Task is a single item on the list. The ID is assigned at creation and
// never changes; everything else may be edited in place.
type Task struct {
	ID          string     `yaml:"id"`
	Description string     `yaml:"description"`
	Note        string     `yaml:"note,omitempty"`
	Tags        []string   `yaml:"tags,omitempty,flow"`
	Finished    bool       `yaml:"finished,omitempty"`
	Created     time.Time  `yaml:"created"`
	FinishedAt  *time.Time `yaml:"finished_at,omitempty"`
}

// New produces an open task with a fresh ID. The taken set holds every ID
// already in use, open and done.
func New(description string, taken map[string]bool) (*Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &ValidationError{Msg: "task description must not be empty"}
	}
	return &Task{
		ID:          newID(taken),
		Description: description,
		Created:     time.Now().UTC().Truncate(time.Second),
	}, nil
}

// Finish marks the task finished and stamps the completion time. Finishing
// an already finished task keeps the original timestamp.
func (t *Task) Finish() {
	if t.Finished {
		return
	}
	now := time.Now().UTC().Truncate(time.Second)
	t.Finished = true
	t.FinishedAt = &now
}

// AddTag appends a tag if it is not already present.
func (t *Task) AddTag(tag string) {
	for _, have := range t.Tags {
		if have == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
}

// RemoveTag drops every occurrence of a tag.
func (t *Task) RemoveTag(tag string) {
	kept := t.Tags[:0]
	for _, have := range t.Tags {
		if have != tag {
			kept = append(kept, have)
		}
	}
	if len(kept) == 0 {
		t.Tags = nil
		return
	}
	t.Tags = kept
}

// HasTag reports whether the task carries the tag.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Age is the time since the task was created.
func (t *Task) Age() time.Duration {
	return time.Since(t.Created)
}

// SinceFinished is the time since the task was finished, false when the
// task is still open.
func (t *Task) SinceFinished() (time.Duration, bool) {
	if t.FinishedAt == nil {
		return 0, false
	}
	return time.Since(*t.FinishedAt), true
}
