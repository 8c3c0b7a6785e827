// Package app wires the application together: configuration, storage,
// clock, logging, and the use case factories the CLI consumes.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/config"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/docstore"
	"github.com/kittyjosh111/discord-reminders-bot/internal/usecase"
)

// Container holds the shared dependencies and builds use cases on
// demand.
type Container struct {
	Config *config.Config
	Docs   domain.DocumentStore
	Clock  domain.Clock
	Logger *slog.Logger
}

// New creates a Container from the default configuration sources.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	return &Container{
		Config: cfg,
		Docs:   docstore.New(cfg.DataDir),
		Clock:  domain.RealClock{},
		Logger: logger,
	}, nil
}

// NewWithDeps creates a Container from explicit dependencies. This is
// useful for testing.
func NewWithDeps(cfg *config.Config, docs domain.DocumentStore, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{Config: cfg, Docs: docs, Clock: clock, Logger: logger}
}

// EnsureTodayUseCase creates an EnsureToday use case.
func (c *Container) EnsureTodayUseCase() *usecase.EnsureToday {
	return usecase.NewEnsureToday(c.Docs, c.Clock)
}

// CreateTaskUseCase creates a CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Docs, c.Clock)
}

// DeleteTaskUseCase creates a DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Docs, c.Clock)
}

// EditTaskUseCase creates an EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Docs, c.Clock)
}

// ToggleStatusUseCase creates a ToggleStatus use case.
func (c *Container) ToggleStatusUseCase() *usecase.ToggleStatus {
	return usecase.NewToggleStatus(c.Docs, c.Clock)
}

// CreateTemplateUseCase creates a CreateTemplate use case.
func (c *Container) CreateTemplateUseCase() *usecase.CreateTemplate {
	return usecase.NewCreateTemplate(c.Docs)
}

// EditTemplateUseCase creates an EditTemplate use case.
func (c *Container) EditTemplateUseCase() *usecase.EditTemplate {
	return usecase.NewEditTemplate(c.Docs)
}

// DeleteTemplateUseCase creates a DeleteTemplate use case.
func (c *Container) DeleteTemplateUseCase() *usecase.DeleteTemplate {
	return usecase.NewDeleteTemplate(c.Docs)
}

// LoadTemplateUseCase creates a LoadTemplate use case.
func (c *Container) LoadTemplateUseCase() *usecase.LoadTemplate {
	return usecase.NewLoadTemplate(c.Docs, c.Clock)
}

// ShowTemplatesUseCase creates a ShowTemplates use case.
func (c *Container) ShowTemplatesUseCase() *usecase.ShowTemplates {
	return usecase.NewShowTemplates(c.Docs)
}

// ImportTemplatesUseCase creates an ImportTemplates use case.
func (c *Container) ImportTemplatesUseCase() *usecase.ImportTemplates {
	return usecase.NewImportTemplates(c.Docs)
}

// RemindUseCase creates a Remind use case writing reminders to out.
func (c *Container) RemindUseCase(out io.Writer) *usecase.Remind {
	return usecase.NewRemind(c.Docs, c.Clock, c.Logger, out)
}
