// Package store persists the full task state as one human-editable YAML
// file. Hand edits and comments in the file survive a parse; comments do
// not survive a rewrite.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tableflip.dev/ivy/pkg/tags"
	"tableflip.dev/ivy/pkg/task"
)

// State is everything the state file holds: both task lists and the tag
// styles.
type State struct {
	Tasks  task.Store    `yaml:",inline"`
	Styles tags.Registry `yaml:"tags,omitempty"`
}

// NewState returns an empty state, the first-run default.
func NewState() *State {
	return &State{Styles: tags.Registry{}}
}

// CorruptStateError means the state file exists but cannot be parsed. The
// file is left untouched so a hand edit can be repaired.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("state file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// IoError means the state file could not be read or written: permissions,
// a missing directory, a full disk.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s state file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// Persistence loads and saves the full state.
type Persistence interface {
	Load() (*State, error)
	Save(*State) error
}

// Open returns file-backed persistence at the configured path.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &file{path: cfg.Path()}, nil
}

type file struct {
	path string
}

// Load reads the state file. A missing file is not an error: the first
// run starts empty.
func (f *file) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewState(), nil
		}
		return nil, &IoError{Op: "read", Path: f.path, Err: err}
	}

	st := NewState()
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, &CorruptStateError{Path: f.path, Err: err}
	}
	if st.Styles == nil {
		st.Styles = tags.Registry{}
	}
	return st, nil
}

// Save replaces the state file atomically: marshal, write to a temp file
// beside it, then rename over the original. A failed save leaves the
// previous file intact. The prior contents are kept in a .bak file as a
// hedge against bad hand edits.
func (f *file) Save(st *State) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return &IoError{Op: "prepare", Path: f.path, Err: err}
	}

	if prev, err := os.ReadFile(f.path); err == nil {
		_ = os.WriteFile(f.path+".bak", prev, 0o644)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &IoError{Op: "write", Path: f.path, Err: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return &IoError{Op: "replace", Path: f.path, Err: err}
	}
	return nil
}
