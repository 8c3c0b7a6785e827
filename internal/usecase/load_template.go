package usecase

import (
	"context"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// LoadTemplateInput contains no parameters; the operation works on the
// current day and its weekday template.
type LoadTemplateInput struct{}

// LoadTemplateOutput is the result of LoadTemplate.
type LoadTemplateOutput struct {
	Weekday string
	List    domain.TaskList
	Text    string
}

// LoadTemplate rebases today's list onto its weekday template, for when
// the template was created or extended after the day's list already
// existed. Template tasks come first and keep their ids; prior daily
// tasks are re-appended with fresh ids.
type LoadTemplate struct {
	docs  domain.DocumentStore
	clock domain.Clock
}

// NewLoadTemplate creates a LoadTemplate use case.
func NewLoadTemplate(docs domain.DocumentStore, clock domain.Clock) *LoadTemplate {
	return &LoadTemplate{docs: docs, clock: clock}
}

// Execute merges the weekday template into today's list.
// ErrPreconditionFailed when either document is missing,
// ErrTemplateEmpty when the template holds no tasks; neither writes.
func (uc *LoadTemplate) Execute(_ context.Context, _ LoadTemplateInput) (*LoadTemplateOutput, error) {
	now := uc.clock.Now()
	key := domain.DateKey(now)
	weekday := domain.WeekdayKey(now)

	if !uc.docs.Exists(key) || !uc.docs.Exists(weekday) {
		return nil, domain.ErrPreconditionFailed
	}
	tpl, err := uc.docs.Read(weekday)
	if err != nil {
		return nil, err
	}
	if len(tpl) == 0 {
		return nil, domain.ErrTemplateEmpty
	}

	list, err := uc.docs.Update(key, func(daily domain.TaskList) (domain.TaskList, error) {
		return domain.Merge(tpl, daily), nil
	})
	if err != nil {
		return nil, err
	}

	return &LoadTemplateOutput{
		Weekday: weekday,
		List:    list,
		Text:    domain.Render(list),
	}, nil
}
