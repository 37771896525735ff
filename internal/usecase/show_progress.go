package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ShowProgressInput contains the parameters for computing progress.
type ShowProgressInput struct{}

// ShowProgressOutput contains the progress summary.
type ShowProgressOutput struct {
	Progress domain.Progress
}

// ShowProgress is the use case for summarizing completion of the whole list.
type ShowProgress struct {
	tasks domain.TaskRepository
}

// NewShowProgress creates a new ShowProgress use case.
func NewShowProgress(tasks domain.TaskRepository) *ShowProgress {
	return &ShowProgress{tasks: tasks}
}

// Execute computes progress over every task regardless of any view filter.
func (uc *ShowProgress) Execute(_ context.Context, _ ShowProgressInput) (*ShowProgressOutput, error) {
	tasks, err := uc.tasks.List(domain.FilterAll)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ShowProgressOutput{Progress: domain.ComputeProgress(tasks)}, nil
}
