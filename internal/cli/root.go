// Package cli provides the command-line interface for the reminders bot.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kittyjosh111/discord-reminders-bot/internal/app"
	"github.com/kittyjosh111/discord-reminders-bot/internal/tui"
)

// Command group IDs.
const (
	groupTask     = "task"
	groupTemplate = "template"
	groupDaemon   = "daemon"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command. It receives the container
// for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "remindersbot",
		Short: "Personal daily task tracker",
		Long: `remindersbot keeps one task list per calendar day. The first
command of a day starts the list from that weekday's template, so
recurring chores show up on their own; everything else is added,
edited, toggled, and deleted by task id.

Run without arguments to open the interactive task list.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Daily Tasks:"},
		&cobra.Group{ID: groupTemplate, Title: "Weekday Templates:"},
		&cobra.Group{ID: groupDaemon, Title: "Reminders:"},
	)

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	toggleCmd := newToggleCommand(c)
	toggleCmd.GroupID = groupTask

	templateCmd := newTemplateCommand(c)
	templateCmd.GroupID = groupTemplate

	remindCmd := newRemindCommand(c)
	remindCmd.GroupID = groupDaemon

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		showCmd,
		addCmd,
		rmCmd,
		editCmd,
		toggleCmd,
		templateCmd,
		remindCmd,
		tuiCmd,
	)

	return root
}

// newTUICommand creates the tui command for the interactive task list.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
