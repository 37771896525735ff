package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		// Drop stale lists for a filter the user already moved away from.
		if msg.Filter != "" && msg.Filter != m.filter {
			return m, nil
		}
		m.tasks = msg.Tasks
		m.progress = msg.Progress
		m.updateTaskList()
		return m, nil

	case MsgTaskAdded:
		m.err = nil
		m.mode = ModeNormal
		m.addInput.Reset()
		m.addInput.Blur()
		m.progress = msg.Progress
		m.selectTaskID = msg.Task.ID
		return m, m.loadTasks()

	case MsgTaskToggled:
		m.err = nil
		m.progress = msg.Progress
		return m, m.loadTasks()

	case MsgTaskEdited:
		m.err = nil
		m.mode = ModeNormal
		m.editTaskID = ""
		m.editInput.Blur()
		m.progress = msg.Progress
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.err = nil
		m.mode = ModeNormal
		m.confirmTaskID = ""
		m.progress = msg.Progress
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		// A missing task means the list is stale; leave dialogs and reload.
		if errors.Is(msg.Err, domain.ErrTaskNotFound) {
			m.mode = ModeNormal
			m.editTaskID = ""
			m.confirmTaskID = ""
			return m, m.loadTasks()
		}
		// Rejected input keeps its field focused.
		return m, nil
	}

	return m, nil
}

// handleKeyMsg routes key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.err = nil
		m.mode = ModeAdd
		m.addInput.Reset()
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Toggle):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.selectTaskID = task.ID
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.err = nil
		m.mode = ModeEdit
		m.editTaskID = task.ID
		m.editInput.SetValue(task.Text)
		m.editInput.CursorEnd()
		return m, m.editInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		return m, m.setFilter(m.filter.Next())

	case key.Matches(msg, m.keys.PrevFilter):
		// Three filters cycle, so two steps forward is one step back.
		return m, m.setFilter(m.filter.Next().Next())

	case key.Matches(msg, m.keys.FilterAll):
		return m, m.setFilter(domain.FilterAll)

	case key.Matches(msg, m.keys.FilterPending):
		return m, m.setFilter(domain.FilterPending)

	case key.Matches(msg, m.keys.FilterCompleted):
		return m, m.setFilter(domain.FilterCompleted)
	}

	// Navigation is handled by the list.
	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// setFilter switches the view filter and reloads. The store is not touched.
func (m *Model) setFilter(f domain.Filter) tea.Cmd {
	if f == m.filter {
		return nil
	}
	m.filter = f
	m.taskList.Select(0)
	return m.loadTasks()
}

func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.err = nil
		m.addInput.Reset()
		m.addInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.addTask(m.addInput.Value())
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.err = nil
		m.editTaskID = ""
		m.editInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.editTask(m.editTaskID, m.editInput.Value())
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.deleteTask(m.confirmTaskID)
	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeNormal
		m.confirmTaskID = ""
	}
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}
