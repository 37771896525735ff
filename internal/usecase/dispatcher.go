package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DispatchResult is the acknowledged outcome of an intent.
// Progress is re-read after the intent ran, so views refresh derived state
// from the result instead of computing it themselves.
// Fields are ordered to minimize memory padding.
type DispatchResult struct {
	Task     *domain.Task   // Affected task (add, toggle, edit)
	Tasks    []*domain.Task // Listed tasks (list)
	Op       domain.Op
	Filter   domain.Filter // Applied filter (list)
	Progress domain.Progress
	Removed  bool // Whether the task existed (delete)
}

// Dispatcher routes intents from a view to the task use cases.
type Dispatcher struct {
	add      *AddTask
	toggle   *ToggleTask
	edit     *EditTask
	del      *DeleteTask
	list     *ListTasks
	progress *ShowProgress
	logger   domain.Logger
}

// NewDispatcher creates a Dispatcher whose use cases share one repository.
func NewDispatcher(tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *Dispatcher {
	return &Dispatcher{
		add:      NewAddTask(tasks, ids, clock, logger),
		toggle:   NewToggleTask(tasks, clock, logger),
		edit:     NewEditTask(tasks, logger),
		del:      NewDeleteTask(tasks, logger),
		list:     NewListTasks(tasks),
		progress: NewShowProgress(tasks),
		logger:   logger,
	}
}

// Dispatch runs one intent. Unknown operations return domain.ErrUnknownOp.
func (d *Dispatcher) Dispatch(ctx context.Context, in domain.Intent) (*DispatchResult, error) {
	res := &DispatchResult{Op: in.Op}

	switch in.Op {
	case domain.OpAdd:
		out, err := d.add.Execute(ctx, AddTaskInput{Text: in.Text})
		if err != nil {
			return nil, err
		}
		res.Task = out.Task
	case domain.OpToggle:
		out, err := d.toggle.Execute(ctx, ToggleTaskInput{TaskID: in.ID})
		if err != nil {
			return nil, err
		}
		res.Task = out.Task
	case domain.OpEdit:
		out, err := d.edit.Execute(ctx, EditTaskInput{TaskID: in.ID, Text: in.Text})
		if err != nil {
			return nil, err
		}
		res.Task = out.Task
	case domain.OpDelete:
		out, err := d.del.Execute(ctx, DeleteTaskInput{TaskID: in.ID})
		if err != nil {
			return nil, err
		}
		res.Removed = out.Removed
	case domain.OpList:
		out, err := d.list.Execute(ctx, ListTasksInput{Filter: in.Filter})
		if err != nil {
			return nil, err
		}
		res.Tasks = out.Tasks
		res.Filter = out.Filter
	case domain.OpProgress:
		// Filled in below.
	default:
		if d.logger != nil {
			d.logger.Warn(in.ID, "dispatch", fmt.Sprintf("unknown op %q", in.Op))
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOp, in.Op)
	}

	p, err := d.progress.Execute(ctx, ShowProgressInput{})
	if err != nil {
		return nil, err
	}
	res.Progress = p.Progress

	return res, nil
}
