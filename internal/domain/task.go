// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`                         // Creation time (immutable)
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"` // Completion time (nil while pending)
	ID          string     `json:"id" yaml:"id"`                                       // Opaque unique ID
	Text        string     `json:"text" yaml:"text"`                                   // Task text (trimmed, never empty)
	Completed   bool       `json:"completed" yaml:"completed"`                         // Completion state
}

// NewTask creates a pending task. text must already be normalized.
func NewTask(id, text string, now time.Time) *Task {
	return &Task{
		ID:        id,
		Text:      text,
		CreatedAt: now,
	}
}

// Toggle flips the completion state and keeps CompletedAt in sync with it.
func (t *Task) Toggle(now time.Time) {
	t.Completed = !t.Completed
	if t.Completed {
		at := now
		t.CompletedAt = &at
		return
	}
	t.CompletedAt = nil
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return &c
}

// TimeSummary renders the creation (and completion) labels for display,
// e.g. "Created 2 days ago • Completed Yesterday".
func (t *Task) TimeSummary(now time.Time, dateLayout string) string {
	s := "Created " + TimeLabel(t.CreatedAt, now, dateLayout)
	if t.Completed && t.CompletedAt != nil {
		s += " • Completed " + TimeLabel(*t.CompletedAt, now, dateLayout)
	}
	return s
}

// NormalizeText trims surrounding whitespace from user input.
// An empty result means the input must be rejected.
func NormalizeText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyInput
	}
	return text, nil
}

// CloneTasks deep-copies a slice of tasks.
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
