package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyjosh111/discord-reminders-bot/internal/app"
	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/config"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/docstore"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	now := time.Date(2021, time.January, 2, 12, 0, 0, 0, time.Local)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := app.NewWithDeps(cfg, docstore.New(cfg.DataDir), fixedClock{now}, logger)
	return New(c)
}

// load runs the model's load command and feeds the result back in.
func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.loadCmd()()
	if em, ok := msg.(errMsg); ok {
		t.Fatalf("load failed: %v", em.err)
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_LoadsEmptyDay(t *testing.T) {
	m := load(t, newTestModel(t))

	assert.Equal(t, "01-02-2021", m.key)
	assert.Empty(t, m.list)
	assert.Contains(t, m.View(), "No tasks found!")
}

func TestModel_AddToggleDelete(t *testing.T) {
	m := load(t, newTestModel(t))

	// Add through the command path, as the accept key would.
	msg := m.addCmd("Wake up")()
	require.IsType(t, statusMsg{}, msg)
	m = load(t, m)
	require.Len(t, m.list, 1)
	assert.Contains(t, m.View(), "Wake up")

	msg = m.toggleCmd(0)()
	require.IsType(t, statusMsg{}, msg)
	m = load(t, m)
	status, _ := m.list[0].Status()
	assert.Equal(t, domain.StatusDone, status)

	msg = m.deleteCmd(0)()
	require.IsType(t, statusMsg{}, msg)
	m = load(t, m)
	assert.Empty(t, m.list)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m := load(t, newTestModel(t))
	for _, content := range []string{"a", "b"} {
		msg := m.addCmd(content)()
		require.IsType(t, statusMsg{}, msg)
	}
	m = load(t, m)
	require.Len(t, m.list, 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	// Down at the bottom stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	// Deleting the last task pulls the cursor back.
	msg := m.deleteCmd(1)()
	require.IsType(t, statusMsg{}, msg)
	m = load(t, m)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_AddInputCancel(t *testing.T) {
	m := load(t, newTestModel(t))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(Model)
	assert.True(t, m.adding)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.adding)
}
