package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// newTestModel builds a sized model over a store holding tasks, with the
// initial list already loaded.
func newTestModel(t *testing.T, tasks ...*domain.Task) (*Model, *app.Container) {
	t.Helper()
	store, err := memstore.NewWithTasks(tasks)
	require.NoError(t, err)

	c := app.NewWithDeps(
		app.Config{WorkDir: t.TempDir()},
		store,
		&testutil.SequenceIDs{},
		&testutil.MockClock{NowTime: testNow},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	m := New(c)
	// Static cursors keep blink timers out of run().
	_ = m.addInput.Cursor.SetMode(cursor.CursorStatic)
	_ = m.editInput.Cursor.SetMode(cursor.CursorStatic)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	run(m, m.Init())
	return m, c
}

// run executes cmd and feeds resulting TUI messages back into the model
// until no more commands are produced. Other tea messages are dropped.
func run(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case Msg:
			_, c := m.Update(msg)
			queue = append(queue, c)
		}
	}
}

// press sends a key to the model and runs the resulting command.
func press(m *Model, k string) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	run(m, cmd)
}

// typeText sends each rune of s as a key press.
func typeText(m *Model, s string) {
	for _, r := range s {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		run(m, cmd)
	}
}

func pendingTask(id, text string, age time.Duration) *domain.Task {
	return domain.NewTask(id, text, testNow.Add(-age))
}

func doneTask(id, text string, age time.Duration) *domain.Task {
	task := pendingTask(id, text, age)
	task.Toggle(testNow)
	return task
}

func taskIDs(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
