// Package tui provides the interactive task list built on bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kittyjosh111/discord-reminders-bot/internal/app"
	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
	"github.com/kittyjosh111/discord-reminders-bot/internal/usecase"
)

// listLoadedMsg carries a freshly loaded daily list.
type listLoadedMsg struct {
	key  string
	list domain.TaskList
}

// errMsg carries a failed operation's error.
type errMsg struct {
	err error
}

// statusMsg carries a transient status line message.
type statusMsg struct {
	text string
}

// Model is the bubbletea model for the daily task list.
type Model struct {
	container *app.Container
	keys      KeyMap
	styles    Styles

	key    string
	list   domain.TaskList
	cursor int

	adding bool
	input  textinput.Model

	status string
	err    error
}

// New creates the TUI model.
func New(c *app.Container) Model {
	input := textinput.New()
	input.Placeholder = "task description"
	input.CharLimit = 200
	return Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		input:     input,
	}
}

// Init loads today's list.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.key = msg.key
		m.list = msg.list
		m.err = nil
		if m.cursor >= len(m.list) {
			m.cursor = max(0, len(m.list)-1)
		}
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, m.loadCmd()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.list)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			return m, m.toggleCmd(t.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			return m, m.deleteCmd(t.ID)
		}

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Load):
		return m, m.loadTemplateCmd()
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.adding = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		content := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		if content == "" {
			return m, nil
		}
		return m, m.addCmd(content)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the task list.
func (m Model) View() string {
	var b strings.Builder

	title := "Today's tasks"
	if m.key != "" {
		title = fmt.Sprintf("Tasks for %s", m.key)
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if len(m.list) == 0 {
		b.WriteString(m.styles.Task.Render("No tasks found!"))
		b.WriteString("\n")
	}
	for i, t := range m.list {
		content, ok := t.Content()
		if !ok {
			continue
		}
		status, ok := t.Status()
		if !ok {
			continue
		}

		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		mark := "[ ]"
		line := m.styles.Task.Render(content)
		if status != domain.StatusNotDone {
			mark = "[✓]"
			line = m.styles.Done.Render(content)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", cursor, mark, line, m.styles.ID.Render(fmt.Sprintf("(ID: %d)", t.ID)))
	}

	if m.adding {
		b.WriteString("\nNew task: " + m.input.View() + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.Status.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString(m.styles.Help.Render("space toggle · a add · d delete · L load template · r refresh · q quit"))
	return b.String()
}

func (m Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.list) {
		return domain.Task{}, false
	}
	return m.list[m.cursor], true
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.EnsureTodayUseCase().Execute(context.Background(), usecase.EnsureTodayInput{})
		if err != nil {
			return errMsg{err}
		}
		return listLoadedMsg{key: out.Key, list: out.List}
	}
}

func (m Model) toggleCmd(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.ToggleStatusUseCase().Execute(context.Background(), usecase.ToggleStatusInput{TaskID: id})
		if err != nil {
			return errMsg{err}
		}
		return statusMsg{fmt.Sprintf("Toggled task %d", id)}
	}
}

func (m Model) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		if err != nil {
			return errMsg{err}
		}
		return statusMsg{fmt.Sprintf("Deleted task %d", id)}
	}
}

func (m Model) addCmd(content string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CreateTaskUseCase().Execute(context.Background(), usecase.CreateTaskInput{Content: content})
		if err != nil {
			return errMsg{err}
		}
		return statusMsg{fmt.Sprintf("Added task %d", out.Task.ID)}
	}
}

func (m Model) loadTemplateCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.LoadTemplateUseCase().Execute(context.Background(), usecase.LoadTemplateInput{})
		switch {
		case errors.Is(err, domain.ErrPreconditionFailed):
			return statusMsg{"Missing either the template or the daily task list."}
		case errors.Is(err, domain.ErrTemplateEmpty):
			return statusMsg{"The template for today is empty."}
		case err != nil:
			return errMsg{err}
		}
		return statusMsg{"Template loaded into today's list"}
	}
}
