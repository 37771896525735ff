package domain

import "time"

// TaskRepository owns the ordered task collection.
// Implementations return copies; mutating a returned task never changes stored state.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id string) (*Task, error)

	// List retrieves tasks matching the filter, in stored order.
	List(filter Filter) ([]*Task, error)

	// Prepend inserts a new task at the front of the collection.
	Prepend(task *Task) error

	// Update replaces the stored task with the same ID in place.
	// Returns ErrTaskNotFound if it does not exist.
	Update(task *Task) error

	// Delete removes a task by ID and reports whether it existed.
	Delete(id string) (bool, error)

	// Len returns the number of stored tasks.
	Len() int
}

// TaskMutator applies fn to the stored task with the given ID atomically.
// Stores that support it let use cases read-modify-write under one lock.
type TaskMutator interface {
	Mutate(id string, fn func(*Task) error) (*Task, error)
}

// IDGenerator produces task IDs unique for the lifetime of a store.
type IDGenerator interface {
	NewID() (string, error)
}

// Logger records task events.
// An empty taskID means the entry is not tied to a task.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetLocalConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitLocalConfig(cfg *Config) error
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
