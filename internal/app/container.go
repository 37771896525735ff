// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/idgen"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/infra/seed"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory holding the local .todo.toml
}

// SeedOptions selects the initial tasks. Set fields override the [seed] config.
type SeedOptions struct {
	File   string // YAML seed file
	Sample bool   // Include the sample tasks
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Each Container owns exactly one task store for its lifetime.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	IDs           domain.IDGenerator
	Clock         domain.Clock
	TaskLogger    domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	fileLog   *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory with an empty store.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		logger.Warn("using default configuration", "error", err)
		appConfig = domain.NewDefaultConfig()
	}

	fileLog := logging.New(appConfig.Log.Dir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Tasks:         memstore.New(),
		IDs:           idgen.UUIDv7{},
		Clock:         domain.RealClock{},
		TaskLogger:    fileLog,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Logger:        logger,
		AppConfig:     appConfig,
		fileLog:       fileLog,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// The configuration defaults apply; config files are not read.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		IDs:       ids,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.fileLog == nil {
		return nil
	}
	return c.fileLog.Close()
}

// Seed preloads the store from the seed file and the sample set.
// File tasks go on top of the sample tasks.
func (c *Container) Seed(ctx context.Context, opts SeedOptions) (int, error) {
	sample := opts.Sample || c.AppConfig.Seed.SampleEnabled()
	file := opts.File
	if file == "" {
		file = c.AppConfig.Seed.File
	}

	var tasks []*domain.Task
	if file != "" {
		loaded, err := seed.LoadFile(file, c.IDs, c.Clock.Now())
		if err != nil {
			return 0, err
		}
		tasks = append(tasks, loaded...)
	}
	if sample {
		tasks = append(tasks, seed.Sample(c.Clock.Now())...)
	}

	out, err := c.SeedTasksUseCase().Execute(ctx, usecase.SeedTasksInput{Tasks: tasks})
	if err != nil {
		return 0, fmt.Errorf("seed tasks: %w", err)
	}
	return out.Count, nil
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.IDs, c.Clock, c.TaskLogger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Clock, c.TaskLogger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.TaskLogger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.TaskLogger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowProgressUseCase returns a new ShowProgress use case.
func (c *Container) ShowProgressUseCase() *usecase.ShowProgress {
	return usecase.NewShowProgress(c.Tasks)
}

// SeedTasksUseCase returns a new SeedTasks use case.
func (c *Container) SeedTasksUseCase() *usecase.SeedTasks {
	return usecase.NewSeedTasks(c.Tasks, c.TaskLogger)
}

// Dispatcher returns a new Dispatcher over the container's store.
func (c *Container) Dispatcher() *usecase.Dispatcher {
	return usecase.NewDispatcher(c.Tasks, c.IDs, c.Clock, c.TaskLogger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
