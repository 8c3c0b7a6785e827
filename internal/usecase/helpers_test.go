package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
	"github.com/kittyjosh111/discord-reminders-bot/internal/infra/docstore"
)

// Saturday, January 2, 2021. Daily key "01-02-2021", template key
// "Saturday".
var saturdayNoon = time.Date(2021, time.January, 2, 12, 0, 0, 0, time.Local)

const (
	saturdayKey  = "01-02-2021"
	saturdayName = "Saturday"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newStore(t *testing.T) *docstore.Store {
	t.Helper()
	return docstore.New(t.TempDir())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustWrite(t *testing.T, docs domain.DocumentStore, key string, list domain.TaskList) {
	t.Helper()
	if _, err := docs.Write(key, list); err != nil {
		t.Fatalf("seed document %s: %v", key, err)
	}
}
