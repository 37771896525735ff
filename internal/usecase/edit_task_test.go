package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditTask_Execute(t *testing.T) {
	// Setup
	before := done("a", "Alpha")
	store := newStoreWith(t, pending("z", "Zeta"), before)
	logger := &testutil.MockLogger{}
	uc := NewEditTask(store, logger)

	// Execute
	out, err := uc.Execute(context.Background(), EditTaskInput{TaskID: "a", Text: "  Alpha v2  "})

	// Assert: only the text changed
	require.NoError(t, err)
	want := before.Clone()
	want.Text = "Alpha v2"
	assert.Equal(t, want, out.Task)

	all, _ := store.List(domain.FilterAll)
	assert.Equal(t, []string{"z", "a"}, ids(all))
	assert.Equal(t, want, all[1])

	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0].Msg, `"Alpha" -> "Alpha v2"`)
}

func TestEditTask_Execute_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		id      string
		text    string
	}{
		{name: "blank text", id: "a", text: "   ", wantErr: domain.ErrEmptyInput},
		{name: "unknown id", id: "nope", text: "x", wantErr: domain.ErrTaskNotFound},
		{name: "blank text checked first", id: "nope", text: "", wantErr: domain.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStoreWith(t, pending("a", "Alpha"))
			uc := NewEditTask(store, nil)

			_, err := uc.Execute(context.Background(), EditTaskInput{TaskID: tt.id, Text: tt.text})

			assert.ErrorIs(t, err, tt.wantErr)
			got, _ := store.Get("a")
			assert.Equal(t, "Alpha", got.Text)
		})
	}
}
