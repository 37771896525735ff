// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
type AddTaskInput struct {
	Text string // Raw task text (trimmed before use)
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task *domain.Task // The created task
}

// AddTask is the use case for creating a task at the top of the list.
type AddTask struct {
	tasks  domain.TaskRepository
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a pending task from the trimmed text.
// Blank text returns domain.ErrEmptyInput and leaves the collection untouched.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	text, err := domain.NormalizeText(in.Text)
	if err != nil {
		return nil, err
	}

	id, err := uc.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := domain.NewTask(id, text, uc.clock.Now())
	if err := uc.tasks.Prepend(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created: %q", text))
	}

	return &AddTaskOutput{Task: task}, nil
}
