// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/soracane/taskvault/internal/infra/binstore"
	"github.com/soracane/taskvault/internal/infra/config"
	"github.com/soracane/taskvault/internal/infra/logging"
	"github.com/soracane/taskvault/internal/usecase"
	"github.com/soracane/taskvault/internal/view"
)

// Options overrides configuration values at construction time.
type Options struct {
	StorePath string // Container file path ("" = use config/default)
}

// Container provides dependency injection for the application.
// The store handle is opened exactly once here and owned by the container;
// nothing else opens the backing file.
type Container struct {
	Tasks  domain.TaskRepository
	Clock  domain.Clock
	Logger *slog.Logger
	Feed   *view.Feed
	Config *config.Config

	store *binstore.Store
}

// New creates a Container from the user configuration, applying opts on top.
func New(opts Options) (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.StorePath != "" {
		cfg.StorePath = opts.StorePath
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	store, err := binstore.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}

	return &Container{
		Tasks:  store,
		Clock:  domain.RealClock{},
		Logger: logger,
		Feed:   view.New(store, logger),
		Config: cfg,
		store:  store,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(tasks domain.TaskRepository, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Tasks:  tasks,
		Clock:  clock,
		Logger: logger,
		Feed:   view.New(tasks, logger),
	}
}

// Close releases the store handle.
func (c *Container) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// UseCase factory methods

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks)
}
