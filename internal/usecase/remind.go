package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// RemindHeader opens every reminder message.
const RemindHeader = "This is a reminder message. Here is your list of tasks to complete today:"

// RemindInput is the input for Remind.
type RemindInput struct {
	// Interval is the pause between reminder messages.
	Interval time.Duration
	// QuietStart and QuietEnd bound the local hours (inclusive) during
	// which reminders are suppressed.
	QuietStart int
	QuietEnd   int
}

// Remind runs the periodic reminder loop: every interval it ensures
// today's document (rolling the day over when midnight has passed) and
// prints the current list, except during the quiet hours. It blocks
// until the context is cancelled.
type Remind struct {
	docs   domain.DocumentStore
	clock  domain.Clock
	logger *slog.Logger
	out    io.Writer
}

// NewRemind creates a Remind use case writing reminders to out.
func NewRemind(docs domain.DocumentStore, clock domain.Clock, logger *slog.Logger, out io.Writer) *Remind {
	return &Remind{docs: docs, clock: clock, logger: logger, out: out}
}

// Execute runs the loop. A failed tick is logged and the loop carries
// on; only cancellation stops it.
func (uc *Remind) Execute(ctx context.Context, in RemindInput) error {
	if in.Interval <= 0 {
		return fmt.Errorf("reminder interval must be positive, got %v", in.Interval)
	}
	if in.QuietStart < 0 || in.QuietStart > 23 || in.QuietEnd < 0 || in.QuietEnd > 23 {
		return fmt.Errorf("quiet hours must be between 0 and 23, got %d-%d", in.QuietStart, in.QuietEnd)
	}

	uc.logger.Info("reminder loop started",
		"interval", in.Interval.String(),
		"quiet_start", in.QuietStart,
		"quiet_end", in.QuietEnd)

	ticker := time.NewTicker(in.Interval)
	defer ticker.Stop()

	for {
		if err := uc.tick(in); err != nil {
			uc.logger.Error("reminder tick failed", "error", err)
		}
		select {
		case <-ctx.Done():
			uc.logger.Info("reminder loop stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (uc *Remind) tick(in RemindInput) error {
	hour := uc.clock.Now().Hour()
	if inQuietWindow(hour, in.QuietStart, in.QuietEnd) {
		uc.logger.Debug("quiet hours, reminder suppressed", "hour", hour)
		return nil
	}

	key, list, created, err := ensureDaily(uc.docs, uc.clock)
	if err != nil {
		return err
	}
	if created {
		uc.logger.Info("started a new daily list", "key", key)
	}

	_, err = fmt.Fprintf(uc.out, "%s\n\n%s\n", RemindHeader, domain.Render(list))
	return err
}

// inQuietWindow reports whether hour falls inside the inclusive quiet
// window. A window with start > end wraps past midnight, so 22-6 covers
// late evening through early morning.
func inQuietWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour <= end
	}
	return hour >= start || hour <= end
}
