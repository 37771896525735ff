package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	// Setup
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("abc", "task", "test message")

	// Verify
	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[task-abc]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_GlobalEntry(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("", "system", "global message")

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[global]")
	assert.Contains(t, string(content), "global message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	// Setup
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Debug("1", "task", "debug message")
	logger.Info("1", "task", "info message")
	logger.Warn("1", "task", "warn message")
	logger.Error("1", "task", "error message")

	// Verify debug and info were filtered
	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic or create anything
	logger.Info("1", "task", "test message")
	logger.Error("1", "task", "error message")

	assert.Nil(t, logger.file)
}

func TestLogger_LogFormat(t *testing.T) {
	// Setup
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("42", "usecase", `task created: "my task"`)

	// Verify format: [timestamp] [INFO] [task-42] [usecase] message
	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `[2026-01-02 03:04:05] [INFO] [task-42] [usecase] task created: "my task"`, lines[0])
}

func TestLogger_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("1", "task", "test message")

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
	assert.FileExists(t, domain.LogPath(dir))
}

func TestLogger_Close(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)

	logger.Info("1", "task", "test message")

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close()) // second close is a no-op
	assert.FileExists(t, domain.LogPath(dir))
}
