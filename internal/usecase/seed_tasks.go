package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// SeedTasksInput contains the tasks to preload, in display order.
type SeedTasksInput struct {
	Tasks []*domain.Task
}

// SeedTasksOutput contains the result of seeding.
type SeedTasksOutput struct {
	Count int // Number of tasks inserted
}

// SeedTasks is the use case for preloading tasks into the store.
type SeedTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewSeedTasks creates a new SeedTasks use case.
func NewSeedTasks(tasks domain.TaskRepository, logger domain.Logger) *SeedTasks {
	return &SeedTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute places the given tasks above any existing ones, keeping their order.
// IDs already present (or repeated in the input) are rejected before anything is inserted.
func (uc *SeedTasks) Execute(_ context.Context, in SeedTasksInput) (*SeedTasksOutput, error) {
	seen := make(map[string]struct{}, len(in.Tasks))
	for _, t := range in.Tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidSeed, t.ID)
		}
		seen[t.ID] = struct{}{}

		existing, err := uc.tasks.Get(t.ID)
		if err != nil {
			return nil, fmt.Errorf("get task: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: id %q already exists", domain.ErrInvalidSeed, t.ID)
		}
	}

	// Prepend in reverse so the first input task ends up on top.
	for i := len(in.Tasks) - 1; i >= 0; i-- {
		if err := uc.tasks.Prepend(in.Tasks[i]); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}
	}

	if uc.logger != nil && len(in.Tasks) > 0 {
		uc.logger.Info("", "seed", fmt.Sprintf("loaded %d tasks", len(in.Tasks)))
	}

	return &SeedTasksOutput{Count: len(in.Tasks)}, nil
}
