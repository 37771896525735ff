package cli

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// newTestContainer creates an app.Container over an in-memory store holding tasks.
func newTestContainer(t *testing.T, tasks ...*domain.Task) *app.Container {
	t.Helper()
	store, err := memstore.NewWithTasks(tasks)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewWithDeps(
		app.Config{WorkDir: t.TempDir()},
		store,
		&testutil.SequenceIDs{},
		&testutil.MockClock{NowTime: testNow},
		logger,
	)
}

func pendingTask(id, text string, age time.Duration) *domain.Task {
	return &domain.Task{ID: id, Text: text, CreatedAt: testNow.Add(-age)}
}

func doneTask(id, text string, age time.Duration) *domain.Task {
	completedAt := testNow
	return &domain.Task{ID: id, Text: text, Completed: true, CreatedAt: testNow.Add(-age), CompletedAt: &completedAt}
}

// mockLaunchTUI replaces launchTUIFunc for the duration of the test and
// reports whether it was called.
func mockLaunchTUI(t *testing.T) *bool {
	t.Helper()
	original := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = original })

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}
	return &called
}
