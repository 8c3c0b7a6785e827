package usecase

import (
	"context"
	"strings"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// EditTemplateInput is the input for EditTemplate.
type EditTemplateInput struct {
	Weekday string
	TaskID  int
	Content string
}

// EditTemplateOutput is the result of EditTemplate.
type EditTemplateOutput struct {
	List domain.TaskList
	Text string
}

// EditTemplate replaces the description of a task on a weekday template.
type EditTemplate struct {
	docs domain.DocumentStore
}

// NewEditTemplate creates an EditTemplate use case.
func NewEditTemplate(docs domain.DocumentStore) *EditTemplate {
	return &EditTemplate{docs: docs}
}

// Execute rewrites the content attribute of every template task carrying
// the id. ErrNotFound when the template document does not exist,
// ErrTaskNotFound when the id matches nothing.
func (uc *EditTemplate) Execute(_ context.Context, in EditTemplateInput) (*EditTemplateOutput, error) {
	if !domain.ValidWeekday(in.Weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	if in.TaskID < 0 {
		return nil, domain.ErrInvalidTaskID
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	list, err := uc.docs.Update(in.Weekday, func(list domain.TaskList) (domain.TaskList, error) {
		next, changed := domain.SetAttr(list, in.TaskID, domain.AttrContent, in.Content)
		if !changed {
			return nil, domain.ErrTaskNotFound
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &EditTemplateOutput{List: list, Text: domain.Render(list)}, nil
}
