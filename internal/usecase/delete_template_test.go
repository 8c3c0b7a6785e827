package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

func TestDeleteTemplate_RemovesTask(t *testing.T) {
	docs := newStore(t)
	mustWrite(t, docs, "Friday", domain.Append(domain.Append(nil, "Trash", 0), "Laundry", 0))

	uc := NewDeleteTemplate(docs)
	out, err := uc.Execute(context.Background(), DeleteTemplateInput{Weekday: "Friday", TaskID: 0})

	require.NoError(t, err)
	require.Len(t, out.List, 1)
	content, _ := out.List[0].Content()
	assert.Equal(t, "Laundry", content)
}

func TestDeleteTemplate_UnknownID(t *testing.T) {
	docs := newStore(t)
	mustWrite(t, docs, "Friday", domain.Append(nil, "Trash", 0))

	uc := NewDeleteTemplate(docs)
	_, err := uc.Execute(context.Background(), DeleteTemplateInput{Weekday: "Friday", TaskID: 9})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDeleteTemplate_MissingTemplate(t *testing.T) {
	uc := NewDeleteTemplate(newStore(t))

	_, err := uc.Execute(context.Background(), DeleteTemplateInput{Weekday: "Friday", TaskID: 0})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
