package cli

import (
	"strconv"
	"strings"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// splitBatch splits a semicolon-separated argument into its items, so
// "eat; sleep; gym" addresses three tasks in one command. Blank items
// are dropped.
func splitBatch(s string) []string {
	parts := strings.Split(s, ";")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// parseTaskID parses a task id argument. Non-numeric and negative
// values map to ErrInvalidTaskID before any storage is touched.
func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 0 {
		return 0, domain.ErrInvalidTaskID
	}
	return id, nil
}
