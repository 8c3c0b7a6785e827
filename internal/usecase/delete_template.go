package usecase

import (
	"context"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// DeleteTemplateInput is the input for DeleteTemplate.
type DeleteTemplateInput struct {
	Weekday string
	TaskID  int
}

// DeleteTemplateOutput is the result of DeleteTemplate.
type DeleteTemplateOutput struct {
	List domain.TaskList
	Text string
}

// DeleteTemplate removes a task from a weekday template by id.
type DeleteTemplate struct {
	docs domain.DocumentStore
}

// NewDeleteTemplate creates a DeleteTemplate use case.
func NewDeleteTemplate(docs domain.DocumentStore) *DeleteTemplate {
	return &DeleteTemplate{docs: docs}
}

// Execute removes every template task carrying the id. ErrNotFound when
// the template document does not exist, ErrTaskNotFound when the id
// matches nothing.
func (uc *DeleteTemplate) Execute(_ context.Context, in DeleteTemplateInput) (*DeleteTemplateOutput, error) {
	if !domain.ValidWeekday(in.Weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	if in.TaskID < 0 {
		return nil, domain.ErrInvalidTaskID
	}

	list, err := uc.docs.Update(in.Weekday, func(list domain.TaskList) (domain.TaskList, error) {
		next, changed := domain.Remove(list, in.TaskID)
		if !changed {
			return nil, domain.ErrTaskNotFound
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteTemplateOutput{List: list, Text: domain.Render(list)}, nil
}
