package usecase

import (
	"context"
	"strings"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// CreateTemplateInput is the input for CreateTemplate.
type CreateTemplateInput struct {
	Weekday  string
	Contents []string
}

// CreateTemplateOutput is the result of CreateTemplate.
type CreateTemplateOutput struct {
	List domain.TaskList
	Text string
}

// CreateTemplate appends tasks to a weekday template, creating the
// template document when it does not exist yet.
type CreateTemplate struct {
	docs domain.DocumentStore
}

// NewCreateTemplate creates a CreateTemplate use case.
func NewCreateTemplate(docs domain.DocumentStore) *CreateTemplate {
	return &CreateTemplate{docs: docs}
}

// Execute validates the weekday name, then appends every non-blank
// content as a not-done task. All validation runs before any storage
// access.
func (uc *CreateTemplate) Execute(_ context.Context, in CreateTemplateInput) (*CreateTemplateOutput, error) {
	if !domain.ValidWeekday(in.Weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	contents := make([]string, 0, len(in.Contents))
	for _, c := range in.Contents {
		if strings.TrimSpace(c) != "" {
			contents = append(contents, c)
		}
	}
	if len(contents) == 0 {
		return nil, domain.ErrEmptyContent
	}

	var list domain.TaskList
	if uc.docs.Exists(in.Weekday) {
		var err error
		list, err = uc.docs.Read(in.Weekday)
		if err != nil {
			return nil, err
		}
	}
	for _, c := range contents {
		list = domain.Append(list, c, domain.StatusNotDone)
	}
	list, err := uc.docs.Write(in.Weekday, list)
	if err != nil {
		return nil, err
	}

	return &CreateTemplateOutput{List: list, Text: domain.Render(list)}, nil
}
