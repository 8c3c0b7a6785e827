package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

func TestToggleStatus_FlipsBothWays(t *testing.T) {
	docs := newStore(t)
	mustWrite(t, docs, saturdayKey, domain.Append(nil, "Wake up", 0))

	uc := NewToggleStatus(docs, fixedClock{saturdayNoon})
	ctx := context.Background()

	out, err := uc.Execute(ctx, ToggleStatusInput{TaskID: 0})
	require.NoError(t, err)
	status, _ := out.List[0].Status()
	assert.Equal(t, domain.StatusDone, status)
	assert.Equal(t, "[✓] Wake up - (ID: 0)\n", out.Text)

	out, err = uc.Execute(ctx, ToggleStatusInput{TaskID: 0})
	require.NoError(t, err)
	status, _ = out.List[0].Status()
	assert.Equal(t, domain.StatusNotDone, status)
}

func TestToggleStatus_UnknownID(t *testing.T) {
	docs := newStore(t)
	mustWrite(t, docs, saturdayKey, domain.Append(nil, "Wake up", 0))

	uc := NewToggleStatus(docs, fixedClock{saturdayNoon})
	_, err := uc.Execute(context.Background(), ToggleStatusInput{TaskID: 3})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
