package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.Filter // Empty means all
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks  []*domain.Task // Matching tasks, newest first
	Filter domain.Filter  // The filter that was applied
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns copies of the tasks matching the filter in stored order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := domain.FilterAll
	if in.Filter != "" {
		f, err := domain.ParseFilter(string(in.Filter))
		if err != nil {
			return nil, err
		}
		filter = f
	}

	tasks, err := uc.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks, Filter: filter}, nil
}
