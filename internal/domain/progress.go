package domain

import "strings"

// ProgressMessage pairs a percentage threshold with its encouragement message.
type ProgressMessage struct {
	Message   string
	Threshold int
}

// progressMessages is the message table in ascending threshold order.
var progressMessages = []ProgressMessage{
	{Threshold: 0, Message: "Ready to crush some goals? 🎯"},
	{Threshold: 25, Message: "You're getting started! Keep the momentum going! 💪"},
	{Threshold: 50, Message: "Halfway there! You're doing amazing! 🌟"},
	{Threshold: 75, Message: "So close to the finish line! Push through! 🔥"},
	{Threshold: 100, Message: "YASSS! You absolutely crushed it today! 🎉✨"},
}

// ProgressMessages returns a copy of the message table in ascending threshold order.
func ProgressMessages() []ProgressMessage {
	return append([]ProgressMessage(nil), progressMessages...)
}

// Progress summarizes completion of the task collection.
// Fields are ordered to minimize memory padding.
type Progress struct {
	Message    string `json:"message" yaml:"message"`
	Total      int    `json:"total" yaml:"total"`
	Completed  int    `json:"completed" yaml:"completed"`
	Percentage int    `json:"percentage" yaml:"percentage"`
}

// ComputeProgress derives the progress summary from the given tasks.
func ComputeProgress(tasks []*Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	p.Percentage = Percentage(p.Completed, p.Total)
	p.Message = MessageFor(p.Percentage)
	return p
}

// Percentage returns completed/total as a whole percentage rounded half up.
// Zero total yields zero.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	// floor(100*c/t + 1/2) without floating point
	return (200*completed + total) / (2 * total)
}

// MessageFor returns the message of the largest threshold not above percentage.
// It depends only on the percentage, so an empty list and a list with nothing
// done share the threshold-0 message.
func MessageFor(percentage int) string {
	msg := progressMessages[0].Message
	for _, m := range progressMessages {
		if percentage >= m.Threshold {
			msg = m.Message
		}
	}
	return msg
}

// Bar renders a fixed-width textual progress bar.
func (p Progress) Bar(width int) string {
	if width <= 0 {
		return ""
	}
	filled := width * p.Percentage / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
