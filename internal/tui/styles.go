package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Background lipgloss.Color

	// Text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color

	// Task state colors
	Pending lipgloss.Color
	Done    lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray

	Pending: lipgloss.Color("#74B9FF"), // Light blue
	Done:    lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header          lipgloss.Style
	HeaderStats     lipgloss.Style
	ProgressFilled  lipgloss.Style
	ProgressEmpty   lipgloss.Style
	ProgressPercent lipgloss.Style
	ProgressMessage lipgloss.Style

	// Filter tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Task list
	TaskText          lipgloss.Style
	TaskTextSelected  lipgloss.Style
	TaskTextDone      lipgloss.Style
	TaskMeta          lipgloss.Style
	TaskMetaSelected  lipgloss.Style
	CheckPending      lipgloss.Style
	CheckDone         lipgloss.Style
	CursorNormal      lipgloss.Style
	CursorSelected    lipgloss.Style
	EmptyState        lipgloss.Style
	PaginationSummary lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderStats: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		ProgressFilled: lipgloss.NewStyle().
			Foreground(Colors.Success),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ProgressPercent: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),

		ProgressMessage: lipgloss.NewStyle().
			Italic(true).
			Foreground(Colors.Secondary),

		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Muted),

		TabActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(Colors.TitleNormal).
			Background(Colors.Primary),

		TaskText: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTextSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskTextDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		TaskMetaSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		CheckPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		CheckDone: lipgloss.NewStyle().
			Foreground(Colors.Done).
			Bold(true),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true).
			Padding(1, 2),

		PaginationSummary: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal).
			MarginBottom(1),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Secondary).
			Padding(0, 1),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// CheckStyle returns the checkbox style for a task state.
func (s Styles) CheckStyle(completed bool) lipgloss.Style {
	if completed {
		return s.CheckDone
	}
	return s.CheckPending
}
