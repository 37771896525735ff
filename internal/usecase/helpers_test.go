package usecase

import (
	"testing"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: testNow}
}

// newStoreWith returns a store holding tasks in the given order.
func newStoreWith(t *testing.T, tasks ...*domain.Task) *memstore.Store {
	t.Helper()
	store, err := memstore.NewWithTasks(tasks)
	require.NoError(t, err)
	return store
}

func pending(id, text string) *domain.Task {
	return domain.NewTask(id, text, testNow.Add(-time.Hour))
}

func done(id, text string) *domain.Task {
	task := pending(id, text)
	task.Toggle(testNow.Add(-time.Minute))
	return task
}

func ids(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
