// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// SequenceIDs is a test double for domain.IDGenerator that yields
// "<Prefix>1", "<Prefix>2", ... in order.
type SequenceIDs struct {
	Err    error
	Prefix string
	mu     sync.Mutex
	n      int
}

// NewID returns the next id in the sequence.
func (s *SequenceIDs) NewID() (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id-"
	}
	return fmt.Sprintf("%s%d", prefix, s.n), nil
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, taskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID, category, msg string) { m.record("INFO", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID, category, msg string) { m.record("DEBUG", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID, category, msg string) { m.record("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID, category, msg string) { m.record("ERROR", taskID, category, msg) }

// ErrMock is returned by FailingRepository.
var ErrMock = errors.New("mock failure")

// FailingRepository is a domain.TaskRepository whose every call fails.
// It does not implement domain.TaskMutator, so use cases take the Get/Update path.
type FailingRepository struct {
	Err error
}

func (f *FailingRepository) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrMock
}

// Get fails.
func (f *FailingRepository) Get(string) (*domain.Task, error) { return nil, f.err() }

// List fails.
func (f *FailingRepository) List(domain.Filter) ([]*domain.Task, error) { return nil, f.err() }

// Prepend fails.
func (f *FailingRepository) Prepend(*domain.Task) error { return f.err() }

// Update fails.
func (f *FailingRepository) Update(*domain.Task) error { return f.err() }

// Delete fails.
func (f *FailingRepository) Delete(string) (bool, error) { return false, f.err() }

// Len returns 0.
func (f *FailingRepository) Len() int { return 0 }

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr          error
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo { return m.LocalConfigInfo }

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalConfigInfo }

// InitLocalConfig records the call. Existing files yield domain.ErrConfigExists.
func (m *MockConfigManager) InitLocalConfig(*domain.Config) error {
	m.InitLocalCalled = true
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.LocalConfigInfo.Exists {
		return domain.ErrConfigExists
	}
	return nil
}

// InitGlobalConfig records the call. Existing files yield domain.ErrConfigExists.
func (m *MockConfigManager) InitGlobalConfig(*domain.Config) error {
	m.InitGlobalCalled = true
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.GlobalConfigInfo.Exists {
		return domain.ErrConfigExists
	}
	return nil
}

// Ensure interfaces are satisfied.
var (
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.IDGenerator    = (*SequenceIDs)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
	_ domain.TaskRepository = (*FailingRepository)(nil)
	_ domain.ConfigManager  = (*MockConfigManager)(nil)
)
