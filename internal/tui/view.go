package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

// progressBarWidth is the number of cells in the header progress bar.
const progressBarWidth = 24

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeAdd, ModeEdit, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeAdd {
		b.WriteString(m.viewAddInput())
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewTaskList())

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeAdd, ModeHelp:
		// No overlay for these modes
	case ModeEdit:
		b.WriteString("\n\n")
		b.WriteString(m.viewEditDialog())
	case ModeConfirm:
		b.WriteString("\n\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHeader renders the title, statistics, progress bar and message.
func (m *Model) viewHeader() string {
	p := m.progress
	title := m.styles.Header.Render("✓ todo")
	stats := m.styles.HeaderStats.Render(fmt.Sprintf(
		"%d tasks · %d completed · %d pending",
		p.Total, p.Completed, p.Total-p.Completed,
	))

	bar := p.Bar(progressBarWidth)
	filled := strings.Count(bar, "█")
	barView := m.styles.ProgressFilled.Render(strings.Repeat("█", filled)) +
		m.styles.ProgressEmpty.Render(strings.Repeat("░", progressBarWidth-filled))
	percent := m.styles.ProgressPercent.Render(fmt.Sprintf("%3d%%", p.Percentage))

	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+stats,
		barView+" "+percent,
		m.styles.ProgressMessage.Render(p.Message),
	)
}

// viewTabs renders the filter selector.
func (m *Model) viewTabs() string {
	tabs := make([]string, 0, len(domain.AllFilters()))
	for i, f := range domain.AllFilters() {
		label := fmt.Sprintf("%d %s", i+1, f.Display())
		if f == m.filter {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewTaskList renders the task list or the empty state for the filter.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.styles.EmptyState.Render(domain.EmptyStateMessage(m.filter))
	}
	return m.taskList.View()
}

// viewAddInput renders the new task input.
func (m *Model) viewAddInput() string {
	return m.styles.Input.Render(
		m.styles.InputPrompt.Render("New: ") + m.addInput.View(),
	)
}

// viewEditDialog renders the edit modal.
func (m *Model) viewEditDialog() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Edit Task"),
		m.editInput.View(),
		m.styles.DialogPrompt.Render("enter save · esc cancel"),
	)
	return m.styles.Dialog.Render(content)
}

// viewConfirmDialog renders the delete confirmation.
func (m *Model) viewConfirmDialog() string {
	text := m.confirmTaskID
	for _, t := range m.tasks {
		if t.ID == m.confirmTaskID {
			text = t.Text
			break
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Delete task?"),
		m.styles.TaskText.Render(escapeNewlines(text)),
		m.styles.DialogPrompt.Render("y confirm · n cancel"),
	)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewFooter renders the status line.
func (m *Model) viewFooter() string {
	return NewStatusLine(m.width-4, &m.styles).Render(m.GetStatusInfo())
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("KEYBOARD SHORTCUTS")
	m.help.ShowAll = true
	content := m.help.View(m.keys)
	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
