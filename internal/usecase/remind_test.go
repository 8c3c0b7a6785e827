package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

func TestRemind_EmitsReminderAndStopsOnCancel(t *testing.T) {
	docs := newStore(t)
	mustWrite(t, docs, saturdayKey, domain.Append(nil, "Wake up", 0))

	var buf bytes.Buffer
	uc := NewRemind(docs, fixedClock{saturdayNoon}, discardLogger(), &buf)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// The first reminder fires immediately; the hour-long interval keeps
	// the ticker from firing again before the context expires.
	err := uc.Execute(ctx, RemindInput{Interval: time.Hour, QuietStart: 1, QuietEnd: 6})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), RemindHeader)
	assert.Contains(t, buf.String(), "[x] Wake up - (ID: 0)")
}

func TestRemind_SuppressedDuringQuietHours(t *testing.T) {
	docs := newStore(t)
	threeAM := time.Date(2021, time.January, 2, 3, 0, 0, 0, time.Local)

	var buf bytes.Buffer
	uc := NewRemind(docs, fixedClock{threeAM}, discardLogger(), &buf)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := uc.Execute(ctx, RemindInput{Interval: time.Hour, QuietStart: 1, QuietEnd: 6})

	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.False(t, docs.Exists(saturdayKey), "a suppressed tick must not touch storage")
}

func TestRemind_InvalidInput(t *testing.T) {
	uc := NewRemind(newStore(t), fixedClock{saturdayNoon}, discardLogger(), &bytes.Buffer{})
	ctx := context.Background()

	assert.Error(t, uc.Execute(ctx, RemindInput{Interval: 0, QuietStart: 1, QuietEnd: 6}))
	assert.Error(t, uc.Execute(ctx, RemindInput{Interval: time.Minute, QuietStart: 24, QuietEnd: 6}))
}

func TestInQuietWindow(t *testing.T) {
	tests := []struct {
		name             string
		hour, start, end int
		want             bool
	}{
		{"inside plain window", 3, 1, 6, true},
		{"window bounds are inclusive", 1, 1, 6, true},
		{"outside plain window", 12, 1, 6, false},
		{"wrapped window late evening", 23, 22, 6, true},
		{"wrapped window early morning", 5, 22, 6, true},
		{"outside wrapped window", 12, 22, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inQuietWindow(tt.hour, tt.start, tt.end))
		})
	}
}
