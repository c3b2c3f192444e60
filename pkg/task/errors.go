package task

import "fmt"

// ValidationError reports malformed input: an empty description, a bad
// filter token, a move with identical endpoints.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports a reference that does not resolve to a task in the
// required collection.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no task found for %q", e.Ref)
}
