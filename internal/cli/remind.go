package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kittyjosh111/discord-reminders-bot/internal/app"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/logging"
	"github.com/kittyjosh111/discord-reminders-bot/internal/usecase"
)

// newRemindCommand creates the remind command running the reminder loop.
func newRemindCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Interval   time.Duration
		QuietStart int
		QuietEnd   int
		LogFile    string
		LogLevel   string
	}

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the periodic reminder loop",
		Long: `Print today's task list at a fixed interval until interrupted.
Reminders are suppressed during the quiet hours so the loop can run
overnight. Each tick rolls the day over when midnight has passed, so
a fresh list (seeded from the weekday template) appears on its own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := c.Logger
			if opts.LogFile != "" {
				fileLogger, closeLog, err := logging.NewFileLogger(opts.LogFile, logging.ParseLevel(opts.LogLevel))
				if err != nil {
					return err
				}
				defer func() { _ = closeLog() }()
				logger = fileLogger
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			uc := usecase.NewRemind(c.Docs, c.Clock, logger, cmd.OutOrStdout())
			return uc.Execute(ctx, usecase.RemindInput{
				Interval:   opts.Interval,
				QuietStart: opts.QuietStart,
				QuietEnd:   opts.QuietEnd,
			})
		},
	}

	reminders := c.Config.Reminders
	cmd.Flags().DurationVar(&opts.Interval, "interval",
		time.Duration(reminders.Interval)*time.Second, "pause between reminders")
	cmd.Flags().IntVar(&opts.QuietStart, "quiet-start",
		reminders.QuietStart, "first hour (0-23) of the quiet window")
	cmd.Flags().IntVar(&opts.QuietEnd, "quiet-end",
		reminders.QuietEnd, "last hour (0-23) of the quiet window")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "append loop logs to this file instead of stderr")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "log level for --log-file (debug|info|warn|error)")

	return cmd
}
