// Package seed provides initial task collections: the built-in sample set
// and YAML seed files.
package seed

import (
	"time"

	"github.com/runoshun/todo/internal/domain"
)

const day = 24 * time.Hour

// Sample returns the three sample tasks relative to now, in display order.
// The set keeps its authored order, sample-1 first.
func Sample(now time.Time) []*domain.Task {
	completedAt := now.Add(-day)
	return []*domain.Task{
		{
			ID:        "sample-1",
			Text:      "Plan weekend getaway ✈️",
			CreatedAt: now.Add(-2 * day),
		},
		{
			ID:          "sample-2",
			Text:        "Finish reading that book I started",
			Completed:   true,
			CreatedAt:   now.Add(-3 * day),
			CompletedAt: &completedAt,
		},
		{
			ID:        "sample-3",
			Text:      "Try that new coffee shop downtown ☕",
			CreatedAt: now,
		},
	}
}
