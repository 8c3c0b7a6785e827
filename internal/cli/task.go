package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kittyjosh111/discord-reminders-bot/internal/app"
	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
	"github.com/kittyjosh111/discord-reminders-bot/internal/usecase"
)

// newShowCommand creates the show command for printing today's list.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's task list",
		Long: `Show today's task list. If today has no list yet, one is started
from the weekday template (or empty when no template exists).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.EnsureTodayUseCase().Execute(cmd.Context(), usecase.EnsureTodayInput{})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Here is your list of tasks to complete today:\n\n%s", out.Text)
			return nil
		},
	}
}

// newAddCommand creates the add command for appending tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>[; <description>...]",
		Short: "Add one or more tasks to today's list",
		Long: `Add tasks to today's list. Separate multiple descriptions with
semicolons to add them in one go:

  remindersbot add "eat breakfast; go to the gym"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contents := splitBatch(strings.Join(args, " "))
			if len(contents) == 0 {
				return domain.ErrEmptyContent
			}

			uc := c.CreateTaskUseCase()
			var last *usecase.CreateTaskOutput
			for _, content := range contents {
				out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{Content: content})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task with description '%s' has been created.\n", content)
				last = out
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nYour current list of tasks is as follows:\n\n%s", last.Text)
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>[; <id>...]",
		Short: "Delete tasks from today's list by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := splitBatch(strings.Join(args, " "))
			if len(ids) == 0 {
				return domain.ErrInvalidTaskID
			}

			uc := c.DeleteTaskUseCase()
			var last *usecase.DeleteTaskOutput
			for _, raw := range ids {
				id, err := parseTaskID(raw)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Task id must be a number, got '%s'. No action was taken.\n", raw)
					continue
				}
				out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
				if errors.Is(err, domain.ErrTaskNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "Task with id %d was not found. No action was taken.\n", id)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task with id %d has been deleted.\n", id)
				last = out
			}
			if last != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nYour current list of tasks is as follows:\n\n%s", last.Text)
			}
			return nil
		},
	}
}

// newEditCommand creates the edit command for rewriting a description.
func newEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <description>",
		Short: "Replace the description of a task on today's list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Task id must be a number, got '%s'. No action was taken.\n", args[0])
				return nil
			}
			content := strings.Join(args[1:], " ")

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{TaskID: id, Content: content})
			if errors.Is(err, domain.ErrTaskNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "Task with id %d was not found. No action was taken.\n", id)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task with id %d has been edited to '%s'.\n\n%s", id, content, out.Text)
			return nil
		},
	}
}

// newToggleCommand creates the toggle command for flipping done status.
func newToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>[; <id>...]",
		Short: "Toggle tasks between done and not done",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := splitBatch(strings.Join(args, " "))
			if len(ids) == 0 {
				return domain.ErrInvalidTaskID
			}

			uc := c.ToggleStatusUseCase()
			var last *usecase.ToggleStatusOutput
			for _, raw := range ids {
				id, err := parseTaskID(raw)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Task id must be a number, got '%s'. No action was taken.\n", raw)
					continue
				}
				out, err := uc.Execute(cmd.Context(), usecase.ToggleStatusInput{TaskID: id})
				if errors.Is(err, domain.ErrTaskNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "Task with id %d was not found. No action was taken.\n", id)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task with id %d has had its status toggled.\n", id)
				last = out
			}
			if last != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nYour current list of tasks is as follows:\n\n%s", last.Text)
			}
			return nil
		},
	}
}
