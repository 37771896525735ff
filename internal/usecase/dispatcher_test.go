package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(store domain.TaskRepository) (*Dispatcher, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	return NewDispatcher(store, &testutil.SequenceIDs{}, newClock(), logger), logger
}

func TestDispatcher_Dispatch_Flow(t *testing.T) {
	d, _ := newDispatcher(memstore.New())
	ctx := context.Background()

	// add
	res, err := d.Dispatch(ctx, domain.Intent{Op: domain.OpAdd, Text: "Write report"})
	require.NoError(t, err)
	assert.Equal(t, domain.OpAdd, res.Op)
	assert.Equal(t, "id-1", res.Task.ID)
	assert.Equal(t, domain.Progress{Total: 1, Message: domain.MessageFor(0)}, res.Progress)

	_, err = d.Dispatch(ctx, domain.Intent{Op: domain.OpAdd, Text: "Call mom"})
	require.NoError(t, err)

	// toggle refreshes progress
	res, err = d.Dispatch(ctx, domain.Intent{Op: domain.OpToggle, ID: "id-1"})
	require.NoError(t, err)
	assert.True(t, res.Task.Completed)
	assert.Equal(t, 50, res.Progress.Percentage)
	assert.Equal(t, 1, res.Progress.Completed)

	// edit
	res, err = d.Dispatch(ctx, domain.Intent{Op: domain.OpEdit, ID: "id-2", Text: "Call dad"})
	require.NoError(t, err)
	assert.Equal(t, "Call dad", res.Task.Text)

	// list
	res, err = d.Dispatch(ctx, domain.Intent{Op: domain.OpList, Filter: domain.FilterPending})
	require.NoError(t, err)
	assert.Equal(t, []string{"id-2"}, ids(res.Tasks))
	assert.Equal(t, domain.FilterPending, res.Filter)

	// delete
	res, err = d.Dispatch(ctx, domain.Intent{Op: domain.OpDelete, ID: "id-2"})
	require.NoError(t, err)
	assert.True(t, res.Removed)
	assert.Equal(t, 100, res.Progress.Percentage)

	// delete again is not an error
	res, err = d.Dispatch(ctx, domain.Intent{Op: domain.OpDelete, ID: "id-2"})
	require.NoError(t, err)
	assert.False(t, res.Removed)

	// progress
	res, err = d.Dispatch(ctx, domain.Intent{Op: domain.OpProgress})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Progress.Total)
	assert.Nil(t, res.Task)
}

func TestDispatcher_Dispatch_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		intent  domain.Intent
		name    string
	}{
		{name: "unknown op", intent: domain.Intent{Op: "archive"}, wantErr: domain.ErrUnknownOp},
		{name: "empty op", intent: domain.Intent{}, wantErr: domain.ErrUnknownOp},
		{name: "blank add", intent: domain.Intent{Op: domain.OpAdd, Text: " "}, wantErr: domain.ErrEmptyInput},
		{name: "toggle missing", intent: domain.Intent{Op: domain.OpToggle, ID: "x"}, wantErr: domain.ErrTaskNotFound},
		{name: "edit missing", intent: domain.Intent{Op: domain.OpEdit, ID: "x", Text: "t"}, wantErr: domain.ErrTaskNotFound},
		{name: "blank edit", intent: domain.Intent{Op: domain.OpEdit, ID: "a", Text: ""}, wantErr: domain.ErrEmptyInput},
		{name: "bad filter", intent: domain.Intent{Op: domain.OpList, Filter: "later"}, wantErr: domain.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStoreWith(t, pending("a", "Alpha"))
			d, _ := newDispatcher(store)

			res, err := d.Dispatch(context.Background(), tt.intent)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
			got, _ := store.Get("a")
			assert.Equal(t, pending("a", "Alpha"), got)
		})
	}
}

func TestDispatcher_Dispatch_UnknownOpLogged(t *testing.T) {
	d, logger := newDispatcher(memstore.New())

	_, err := d.Dispatch(context.Background(), domain.Intent{Op: "archive", ID: "a"})

	require.Error(t, err)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "WARN", logger.Entries[0].Level)
}

func TestDispatcher_Dispatch_RepositoryError(t *testing.T) {
	d, _ := newDispatcher(&testutil.FailingRepository{})

	_, err := d.Dispatch(context.Background(), domain.Intent{Op: domain.OpProgress})

	assert.ErrorIs(t, err, testutil.ErrMock)
}
