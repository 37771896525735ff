package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase/shared"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID string
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task *domain.Task // The task after the toggle
}

// ToggleTask is the use case for flipping a task's completion state.
type ToggleTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute flips Completed. CompletedAt is set to now when the task becomes
// completed and cleared when it becomes pending.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	now := uc.clock.Now()
	task, err := shared.MutateTask(uc.tasks, in.TaskID, func(t *domain.Task) error {
		t.Toggle(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		state := "pending"
		if task.Completed {
			state = "completed"
		}
		uc.logger.Info(task.ID, "task", "marked "+state)
	}

	return &ToggleTaskOutput{Task: task}, nil
}
