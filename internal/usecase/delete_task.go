package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Removed bool // False when no task had the ID
}

// DeleteTask is the use case for removing a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task. Deleting an unknown ID is not an error.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	removed, err := uc.tasks.Delete(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	if uc.logger != nil {
		if removed {
			uc.logger.Info(in.TaskID, "task", "deleted")
		} else {
			uc.logger.Debug(in.TaskID, "task", "delete: no such task")
		}
	}

	return &DeleteTaskOutput{Removed: removed}, nil
}
