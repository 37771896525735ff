package tui

import "github.com/runoshun/todo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the filtered task list has been read.
type MsgTasksLoaded struct {
	Tasks    []*domain.Task
	Filter   domain.Filter
	Progress domain.Progress
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a new task is created.
type MsgTaskAdded struct {
	Task     *domain.Task
	Progress domain.Progress
}

func (MsgTaskAdded) sealed() {}

// MsgTaskToggled is sent when a task's completion state flips.
type MsgTaskToggled struct {
	Task     *domain.Task
	Progress domain.Progress
}

func (MsgTaskToggled) sealed() {}

// MsgTaskEdited is sent when a task's text is replaced.
type MsgTaskEdited struct {
	Task     *domain.Task
	Progress domain.Progress
}

func (MsgTaskEdited) sealed() {}

// MsgTaskDeleted is sent when a delete intent is acknowledged.
type MsgTaskDeleted struct {
	TaskID   string
	Progress domain.Progress
	Removed  bool
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an intent is rejected.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
