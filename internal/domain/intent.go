package domain

import (
	"fmt"
	"strings"
)

// Op identifies an operation requested by the view layer.
type Op string

const (
	OpAdd      Op = "add"      // Create a task from Text
	OpToggle   Op = "toggle"   // Flip completion of ID
	OpEdit     Op = "edit"     // Replace the text of ID with Text
	OpDelete   Op = "delete"   // Remove ID
	OpList     Op = "list"     // List tasks matching Filter
	OpProgress Op = "progress" // Compute progress
)

// AllOps returns all valid operations.
func AllOps() []Op {
	return []Op{OpAdd, OpToggle, OpEdit, OpDelete, OpList, OpProgress}
}

// ParseOp parses an operation name.
func ParseOp(s string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllOps() {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// IsMutation reports whether the operation changes the collection.
func (o Op) IsMutation() bool {
	switch o {
	case OpAdd, OpToggle, OpEdit, OpDelete:
		return true
	case OpList, OpProgress:
		return false
	}
	return false
}

// Intent is a single request sent from the view to the task store.
// Which fields are read depends on Op.
type Intent struct {
	Op     Op     `json:"op" yaml:"op"`
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	Filter Filter `json:"filter,omitempty" yaml:"filter,omitempty"`
}
