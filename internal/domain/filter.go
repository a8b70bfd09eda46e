package domain

import (
	"errors"
	"strings"
)

var ErrInvalidFilter = errors.New("invalid filter")

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter accepts "", "all", "active" and "completed" (case-insensitive).
// The empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", ErrInvalidFilter
}

func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	}
	return true
}

// EmptyMessage is what to show when nothing passes the filter.
func (f Filter) EmptyMessage() string {
	switch f {
	case FilterActive:
		return "No active tasks. Great job!"
	case FilterCompleted:
		return "No completed tasks yet."
	}
	return "No tasks yet. Add your first task above!"
}

// Visible returns the tasks matching f in their original order.
// The result never aliases tasks.
func Visible(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
