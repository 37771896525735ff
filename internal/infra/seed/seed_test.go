package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSample(t *testing.T) {
	tasks := Sample(now)

	require.Len(t, tasks, 3)
	assert.Equal(t, "sample-1", tasks[0].ID)
	assert.Equal(t, "sample-2", tasks[1].ID)
	assert.Equal(t, "sample-3", tasks[2].ID)

	// completed iff completedAt is set
	for _, task := range tasks {
		assert.Equal(t, task.Completed, task.CompletedAt != nil, task.ID)
	}

	assert.Equal(t, "Created 2 days ago", tasks[0].TimeSummary(now, ""))
	assert.Equal(t, "Created 3 days ago • Completed Yesterday", tasks[1].TimeSummary(now, ""))
	assert.Equal(t, "Created Today", tasks[2].TimeSummary(now, ""))

	p := domain.ComputeProgress(tasks)
	assert.Equal(t, 33, p.Percentage)
}

func TestSample_FreshSlices(t *testing.T) {
	a := Sample(now)
	a[0].Text = "changed"

	assert.NotEqual(t, "changed", Sample(now)[0].Text)
}

func TestLoad(t *testing.T) {
	// Setup
	input := `
tasks:
  - text: "  Buy milk  "
  - id: report
    text: Write report
    completed: true
    createdAt: 2026-01-02T09:00:00Z
    completedAt: 2026-01-03T18:30:00Z
`
	ids := &testutil.SequenceIDs{}

	// Execute
	tasks, err := Load(strings.NewReader(input), ids, now)

	// Assert
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "id-1", tasks[0].ID)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.Equal(t, now, tasks[0].CreatedAt)
	assert.False(t, tasks[0].Completed)
	assert.Nil(t, tasks[0].CompletedAt)

	assert.Equal(t, "report", tasks[1].ID)
	assert.True(t, tasks[1].Completed)
	require.NotNil(t, tasks[1].CompletedAt)
	assert.Equal(t, time.Date(2026, 1, 3, 18, 30, 0, 0, time.UTC), tasks[1].CompletedAt.UTC())
}

func TestLoad_Empty(t *testing.T) {
	tasks, err := Load(strings.NewReader(""), &testutil.SequenceIDs{}, now)

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"blank text", "tasks:\n  - text: '   '\n"},
		{"completed without completedAt", "tasks:\n  - text: a\n    completed: true\n"},
		{"completedAt while pending", "tasks:\n  - text: a\n    completedAt: 2026-01-03T18:30:00Z\n"},
		{"duplicate id", "tasks:\n  - {id: x, text: a}\n  - {id: x, text: b}\n"},
		{"unknown field", "tasks:\n  - text: a\n    priority: 1\n"},
		{"malformed", "tasks: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), &testutil.SequenceIDs{}, now)
			assert.ErrorIs(t, err, domain.ErrInvalidSeed)
		})
	}
}

func TestLoad_IDGeneratorError(t *testing.T) {
	ids := &testutil.SequenceIDs{Err: testutil.ErrMock}

	_, err := Load(strings.NewReader("tasks:\n  - text: a\n"), ids, now)

	assert.ErrorIs(t, err, testutil.ErrMock)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - text: from file\n"), 0o644))

	tasks, err := LoadFile(path, &testutil.SequenceIDs{}, now)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "from file", tasks[0].Text)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &testutil.SequenceIDs{}, now)

	assert.ErrorIs(t, err, os.ErrNotExist)
}
