package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

func TestImportTemplates_CreatesTemplatesFromYAML(t *testing.T) {
	docs := newStore(t)
	uc := NewImportTemplates(docs)

	source := []byte(`
Monday:
  - Wake up
  - Gym
Friday:
  - Take out trash
`)
	out, err := uc.Execute(context.Background(), ImportTemplatesInput{Source: source})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Monday": 2, "Friday": 1}, out.Imported)

	monday, err := docs.Read("Monday")
	require.NoError(t, err)
	require.Len(t, monday, 2)
	content, _ := monday[1].Content()
	assert.Equal(t, "Gym", content)
}

func TestImportTemplates_AppendsToExistingTemplate(t *testing.T) {
	docs := newStore(t)
	mustWrite(t, docs, "Monday", domain.Append(nil, "Wake up", 0))

	uc := NewImportTemplates(docs)
	out, err := uc.Execute(context.Background(), ImportTemplatesInput{Source: []byte("Monday:\n  - Gym\n")})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Monday": 1}, out.Imported)

	monday, err := docs.Read("Monday")
	require.NoError(t, err)
	require.Len(t, monday, 2)
	assert.Equal(t, 1, monday[1].ID)
}

func TestImportTemplates_BadWeekdayRejectsWholeDocument(t *testing.T) {
	docs := newStore(t)
	uc := NewImportTemplates(docs)

	source := []byte(`
Monday:
  - Wake up
Someday:
  - Never
`)
	_, err := uc.Execute(context.Background(), ImportTemplatesInput{Source: source})

	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
	assert.False(t, docs.Exists("Monday"), "a rejected import must not write any template")
}

func TestImportTemplates_MalformedYAML(t *testing.T) {
	uc := NewImportTemplates(newStore(t))

	_, err := uc.Execute(context.Background(), ImportTemplatesInput{Source: []byte("Monday: [unclosed")})

	assert.Error(t, err)
}

func TestImportTemplates_EmptyDocument(t *testing.T) {
	uc := NewImportTemplates(newStore(t))

	_, err := uc.Execute(context.Background(), ImportTemplatesInput{Source: []byte("")})

	assert.Error(t, err)
}
