package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kittyjosh111/discord-reminders-bot/internal/app"
	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
	"github.com/kittyjosh111/discord-reminders-bot/internal/usecase"
)

// newTemplateCommand creates the template command and its subcommands.
func newTemplateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage weekday templates",
		Long: `Manage the per-weekday templates that seed each day's task list.
Weekday names are the full English names, capitalized: Sunday
through Saturday.`,
	}
	cmd.AddCommand(
		newTemplateCreateCommand(c),
		newTemplateEditCommand(c),
		newTemplateRmCommand(c),
		newTemplateShowCommand(c),
		newTemplateLoadCommand(c),
		newTemplateImportCommand(c),
	)
	return cmd
}

func newTemplateCreateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "create <weekday> <description>[; <description>...]",
		Short: "Add tasks to a weekday template",
		Long: `Add tasks to a weekday template, creating the template when it does
not exist yet. Separate multiple descriptions with semicolons:

  remindersbot template create Monday "wake up; go to the gym"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday := args[0]
			contents := splitBatch(strings.Join(args[1:], " "))

			out, err := c.CreateTemplateUseCase().Execute(cmd.Context(), usecase.CreateTemplateInput{
				Weekday:  weekday,
				Contents: contents,
			})
			if errors.Is(err, domain.ErrInvalidWeekday) {
				fmt.Fprintf(cmd.OutOrStdout(), "'%s' is not a day of the week. Please type out the full name, capitalized.\n", weekday)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Template for %s saved. It will automatically apply the next time it is %s.\n\n%s",
				weekday, weekday, out.Text)
			return nil
		},
	}
}

func newTemplateEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <weekday> <id> <description>",
		Short: "Replace the description of a template task",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday := args[0]
			id, err := parseTaskID(args[1])
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Task id must be a number, got '%s'. No action was taken.\n", args[1])
				return nil
			}
			content := strings.Join(args[2:], " ")

			out, err := c.EditTemplateUseCase().Execute(cmd.Context(), usecase.EditTemplateInput{
				Weekday: weekday,
				TaskID:  id,
				Content: content,
			})
			if done := renderTemplateOutcome(cmd, err, weekday, id); done {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Task with id %d on the template for %s has been edited to '%s'.\n\n%s",
				id, weekday, content, out.Text)
			return nil
		},
	}
}

func newTemplateRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <weekday> <id>",
		Short: "Delete a task from a weekday template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday := args[0]
			id, err := parseTaskID(args[1])
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Task id must be a number, got '%s'. No action was taken.\n", args[1])
				return nil
			}

			out, err := c.DeleteTemplateUseCase().Execute(cmd.Context(), usecase.DeleteTemplateInput{
				Weekday: weekday,
				TaskID:  id,
			})
			if done := renderTemplateOutcome(cmd, err, weekday, id); done {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Task with id %d has been deleted from the template for %s.\n\n%s",
				id, weekday, out.Text)
			return nil
		},
	}
}

func newTemplateShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all weekday templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowTemplatesUseCase().Execute(cmd.Context(), usecase.ShowTemplatesInput{})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Here are your weekday templates:\n%s", out.Text)
			return nil
		},
	}
}

func newTemplateLoadCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Merge today's weekday template into today's list",
		Long: `Merge today's weekday template into today's list. Use this when the
template was created or extended after the day's list already
existed; the template tasks come first and keep their ids, and the
day's prior tasks are renumbered after them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.LoadTemplateUseCase().Execute(cmd.Context(), usecase.LoadTemplateInput{})
			if errors.Is(err, domain.ErrPreconditionFailed) {
				fmt.Fprintln(cmd.OutOrStdout(), "Missing either the template or the daily task list. No action was taken.")
				return nil
			}
			if errors.Is(err, domain.ErrTemplateEmpty) {
				fmt.Fprintln(cmd.OutOrStdout(), "The template for today is empty. No action was taken.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Daily task list now includes the tasks from the template for %s.\n\n%s",
				out.Weekday, out.Text)
			return nil
		},
	}
}

func newTemplateImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import template tasks for several weekdays from a YAML file",
		Long: `Import template tasks from a YAML file mapping weekday names to task
descriptions:

  Monday:
    - Wake up
    - Gym
  Friday:
    - Take out trash

A file naming an invalid weekday is rejected as a whole; no template
is touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read template file: %w", err)
			}
			out, err := c.ImportTemplatesUseCase().Execute(cmd.Context(), usecase.ImportTemplatesInput{Source: source})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported template tasks:\n%s", out.Text)
			return nil
		},
	}
}

// renderTemplateOutcome prints the plain message for the non-fatal
// template outcomes and reports whether err was handled.
func renderTemplateOutcome(cmd *cobra.Command, err error, weekday string, id int) bool {
	switch {
	case errors.Is(err, domain.ErrInvalidWeekday):
		fmt.Fprintf(cmd.OutOrStdout(), "'%s' is not a day of the week. Please type out the full name, capitalized.\n", weekday)
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(cmd.OutOrStdout(), "No template file for %s. Create some tasks using 'template create'.\n", weekday)
	case errors.Is(err, domain.ErrTaskNotFound):
		fmt.Fprintf(cmd.OutOrStdout(), "Task with id %d was not found on the template for %s. No action was taken.\n", id, weekday)
	default:
		return false
	}
	return true
}
