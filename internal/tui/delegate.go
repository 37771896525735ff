package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/todo/internal/domain"
)

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// checkbox returns the marker for a task state.
func checkbox(completed bool) string {
	if completed {
		return "[✓]"
	}
	return "[ ]"
}

// Fields are ordered to minimize memory padding.
type taskDelegate struct {
	now        func() time.Time
	dateLayout string
	styles     Styles
}

func newTaskDelegate(styles Styles, now func() time.Time, dateLayout string) taskDelegate {
	return taskDelegate{styles: styles, now: now, dateLayout: dateLayout}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// prefixWidth is the width of "  > [✓] " before the task text.
const prefixWidth = 8

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	maxTextLen := m.Width() - prefixWidth - 2
	if maxTextLen < 10 {
		maxTextLen = 10
	}
	text := escapeNewlines(task.Text)
	if runewidth.StringWidth(text) > maxTextLen {
		text = runewidth.Truncate(text, maxTextLen, "...")
	}

	cursor := d.styles.CursorNormal.Render(" ")
	textStyle := d.styles.TaskText
	metaStyle := d.styles.TaskMeta
	if selected {
		cursor = d.styles.CursorSelected.Render(">")
		textStyle = d.styles.TaskTextSelected
		metaStyle = d.styles.TaskMetaSelected
	}
	if task.Completed {
		textStyle = d.styles.TaskTextDone
	}

	check := d.styles.CheckStyle(task.Completed).Render(checkbox(task.Completed))
	_, _ = fmt.Fprintf(w, "  %s %s %s\n", cursor, check, textStyle.Render(text))

	meta := task.TimeSummary(d.now(), d.dateLayout)
	_, _ = fmt.Fprint(w, strings.Repeat(" ", prefixWidth)+metaStyle.Render(meta))
}
