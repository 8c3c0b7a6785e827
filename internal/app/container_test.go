package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/config"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/docstore"
)

func TestNew_LoadsFromEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()
	t.Setenv("REMINDERS_DATA_DIR", dataDir)

	c, err := New()

	require.NoError(t, err)
	assert.Equal(t, dataDir, c.Config.DataDir)
	assert.NotNil(t, c.Docs)
	assert.IsType(t, domain.RealClock{}, c.Clock)
}

func TestContainer_BuildsUseCases(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewWithDeps(cfg, docstore.New(cfg.DataDir), domain.RealClock{}, logger)

	assert.NotNil(t, c.EnsureTodayUseCase())
	assert.NotNil(t, c.CreateTaskUseCase())
	assert.NotNil(t, c.DeleteTaskUseCase())
	assert.NotNil(t, c.EditTaskUseCase())
	assert.NotNil(t, c.ToggleStatusUseCase())
	assert.NotNil(t, c.CreateTemplateUseCase())
	assert.NotNil(t, c.EditTemplateUseCase())
	assert.NotNil(t, c.DeleteTemplateUseCase())
	assert.NotNil(t, c.LoadTemplateUseCase())
	assert.NotNil(t, c.ShowTemplatesUseCase())
	assert.NotNil(t, c.ImportTemplatesUseCase())
	assert.NotNil(t, c.RemindUseCase(io.Discard))
}
