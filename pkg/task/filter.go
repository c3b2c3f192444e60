package task

import (
	"fmt"
	"strings"
)

// FilterToken is a single tag constraint: require the tag present (+tag)
// or require it absent (/tag).
type FilterToken struct {
	Tag     string
	Exclude bool
}

// Filter is the conjunction of its tokens. The empty filter matches every
// task. Tags named by a filter need not exist anywhere.
type Filter []FilterToken

// ParseFilter parses +tag and /tag arguments.
func ParseFilter(args []string) (Filter, error) {
	f := make(Filter, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "+") && len(arg) > 1:
			f = append(f, FilterToken{Tag: arg[1:]})
		case strings.HasPrefix(arg, "/") && len(arg) > 1:
			f = append(f, FilterToken{Tag: arg[1:], Exclude: true})
		default:
			return nil, &ValidationError{
				Msg: fmt.Sprintf("filter tag %q must start with + to include or / to exclude", arg),
			}
		}
	}
	return f, nil
}

// Match reports whether the task satisfies every token.
func (f Filter) Match(t *Task) bool {
	for _, tok := range f {
		if t.HasTag(tok.Tag) == tok.Exclude {
			return false
		}
	}
	return true
}

// Split separates the tokens into inclusion tags and exclusion tags, used
// by edit to add and remove tags with one token syntax.
func (f Filter) Split() (add, remove []string) {
	for _, tok := range f {
		if tok.Exclude {
			remove = append(remove, tok.Tag)
		} else {
			add = append(add, tok.Tag)
		}
	}
	return add, remove
}
