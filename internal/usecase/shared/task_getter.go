package shared

import (
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// GetTask retrieves a task by ID and returns domain.ErrTaskNotFound if not found.
// This centralizes the common pattern of:
//
//	task, err := repo.Get(taskID)
//	if err != nil { return nil, fmt.Errorf("get task: %w", err) }
//	if task == nil { return nil, domain.ErrTaskNotFound }
func GetTask(repo domain.TaskRepository, taskID string) (*domain.Task, error) {
	task, err := repo.Get(taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// MutateTask applies fn to the task with the given ID and stores the result.
// Repositories implementing domain.TaskMutator do this under their own lock;
// others fall back to Get followed by Update.
func MutateTask(repo domain.TaskRepository, taskID string, fn func(*domain.Task) error) (*domain.Task, error) {
	if m, ok := repo.(domain.TaskMutator); ok {
		return m.Mutate(taskID, fn)
	}

	task, err := GetTask(repo, taskID)
	if err != nil {
		return nil, err
	}
	if err := fn(task); err != nil {
		return nil, err
	}
	if err := repo.Update(task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}
