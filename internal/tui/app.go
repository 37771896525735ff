package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Height of everything above and below the task list.
const chromeHeight = 12

// Model is the main bubbletea model for the TUI.
// It holds view state only; the task collection lives in the container's store
// and is reached through the dispatcher.
type Model struct {
	// Dependencies (pointers first for alignment)
	dispatcher *usecase.Dispatcher
	clock      domain.Clock
	err        error

	// State (slices - contain pointers)
	tasks []*domain.Task

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model
	progress domain.Progress

	// Input state (large structs)
	addInput  textinput.Model
	editInput textinput.Model

	// String state
	filter        domain.Filter
	dateLayout    string
	editTaskID    string
	confirmTaskID string
	selectTaskID  string // Task to select after the next reload

	// Numeric state (smaller types last)
	mode   Mode
	width  int
	height int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ai := textinput.New()
	ai.Placeholder = "What needs to be done?"
	ai.CharLimit = 500

	ei := textinput.New()
	ei.Placeholder = "Task text"
	ei.CharLimit = 500

	cfg := c.AppConfig
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	filter := cfg.View.Filter
	if filter == "" {
		filter = domain.FilterAll
	}

	clock := c.Clock
	styles := DefaultStyles()
	delegate := newTaskDelegate(styles, func() time.Time { return clock.Now() }, cfg.View.DateLayout)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	h := help.New()
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc

	return &Model{
		dispatcher: c.Dispatcher(),
		clock:      clock,
		mode:       ModeNormal,
		keys:       DefaultKeyMap(),
		styles:     styles,
		help:       h,
		taskList:   taskList,
		addInput:   ai,
		editInput:  ei,
		filter:     filter,
		dateLayout: cfg.View.DateLayout,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Filter returns the current filter selection.
func (m *Model) Filter() domain.Filter {
	return m.filter
}

// Tasks returns the tasks currently shown.
func (m *Model) Tasks() []*domain.Task {
	return m.tasks
}

// Progress returns the last acknowledged progress summary.
func (m *Model) Progress() domain.Progress {
	return m.progress
}

// Err returns the last rejected intent's error, if any.
func (m *Model) Err() error {
	return m.err
}

// loadTasks returns a command that lists tasks for the current filter.
func (m *Model) loadTasks() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		res, err := m.dispatcher.Dispatch(context.Background(), domain.Intent{Op: domain.OpList, Filter: filter})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: res.Tasks, Filter: res.Filter, Progress: res.Progress}
	}
}

// addTask returns a command that creates a task.
func (m *Model) addTask(text string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.dispatcher.Dispatch(context.Background(), domain.Intent{Op: domain.OpAdd, Text: text})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{Task: res.Task, Progress: res.Progress}
	}
}

// toggleTask returns a command that flips a task's completion state.
func (m *Model) toggleTask(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.dispatcher.Dispatch(context.Background(), domain.Intent{Op: domain.OpToggle, ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{Task: res.Task, Progress: res.Progress}
	}
}

// editTask returns a command that replaces a task's text.
func (m *Model) editTask(id, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.dispatcher.Dispatch(context.Background(), domain.Intent{Op: domain.OpEdit, ID: id, Text: text})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskEdited{Task: res.Task, Progress: res.Progress}
	}
}

// deleteTask returns a command that removes a task.
func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.dispatcher.Dispatch(context.Background(), domain.Intent{Op: domain.OpDelete, ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id, Removed: res.Removed, Progress: res.Progress}
	}
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return nil
	}
	return item.task
}

// updateTaskList replaces the list items, keeping the selection in range.
func (m *Model) updateTaskList() {
	items := make([]list.Item, len(m.tasks))
	for i, t := range m.tasks {
		items[i] = taskItem{task: t}
	}
	index := m.taskList.Index()
	m.taskList.SetItems(items)

	if m.selectTaskID != "" {
		for i, t := range m.tasks {
			if t.ID == m.selectTaskID {
				index = i
				break
			}
		}
		m.selectTaskID = ""
	}
	if index >= len(items) {
		index = len(items) - 1
	}
	if index < 0 {
		index = 0
	}
	m.taskList.Select(index)
}

// updateLayoutSizes recalculates component sizes after a resize.
func (m *Model) updateLayoutSizes() {
	listWidth := m.width - 4
	if listWidth < 20 {
		listWidth = 20
	}
	listHeight := m.height - chromeHeight
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(listWidth, listHeight)
	m.addInput.Width = listWidth - 6
	m.editInput.Width = listWidth - 10
	m.help.Width = m.width
}
