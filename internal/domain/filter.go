package domain

import (
	"fmt"
	"strings"
)

// Filter selects which subset of the task collection is exposed to the view.
type Filter string

const (
	FilterAll       Filter = "all"       // Every task
	FilterCompleted Filter = "completed" // Completed tasks only
	FilterPending   Filter = "pending"   // Tasks not yet completed
)

// AllFilters returns all valid filter values in tab order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterPending, FilterCompleted}
}

// ParseFilter parses a filter name. Matching is case-insensitive.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterCompleted, FilterPending:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Match reports whether the task belongs to the filtered subset.
func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	case FilterAll:
		return true
	}
	return true
}

// Apply returns the order-preserving subsequence of tasks matching the filter.
func (f Filter) Apply(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Next returns the following filter in tab order, wrapping around.
func (f Filter) Next() Filter {
	filters := AllFilters()
	for i, cur := range filters {
		if cur == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// Display returns a human-readable label for the filter.
func (f Filter) Display() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterCompleted:
		return "Completed"
	case FilterPending:
		return "Pending"
	}
	return string(f)
}

// EmptyStateMessage returns the message shown when a filter yields no tasks.
func EmptyStateMessage(f Filter) string {
	switch f {
	case FilterCompleted:
		return "No completed tasks yet. Time to check some items off your list! 🎯"
	case FilterPending:
		return "All tasks completed! You're crushing it today! 🎉"
	case FilterAll:
		return "No tasks yet! Add your first task above to get started on your productivity journey."
	}
	return "No tasks yet! Add your first task above to get started on your productivity journey."
}
