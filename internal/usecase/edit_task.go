package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
type EditTaskInput struct {
	TaskID string
	Text   string // Raw replacement text (trimmed before use)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The edited task
}

// EditTask is the use case for replacing a task's text.
type EditTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, logger domain.Logger) *EditTask {
	return &EditTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute replaces Text only. Blank text is rejected before the lookup,
// so a blank edit of a missing task reports domain.ErrEmptyInput.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	text, err := domain.NormalizeText(in.Text)
	if err != nil {
		return nil, err
	}

	var old string
	task, err := shared.MutateTask(uc.tasks, in.TaskID, func(t *domain.Task) error {
		old = t.Text
		t.Text = text
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("edited: %q -> %q", old, text))
	}

	return &EditTaskOutput{Task: task}, nil
}
