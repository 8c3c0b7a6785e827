package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// ShowTemplatesInput contains no parameters.
type ShowTemplatesInput struct{}

// ShowTemplatesOutput is the result of ShowTemplates.
type ShowTemplatesOutput struct {
	Text string
}

// ShowTemplates renders an overview of all seven weekday templates.
type ShowTemplates struct {
	docs domain.DocumentStore
}

// NewShowTemplates creates a ShowTemplates use case.
func NewShowTemplates(docs domain.DocumentStore) *ShowTemplates {
	return &ShowTemplates{docs: docs}
}

// Execute walks the weekdays Sunday through Saturday and reports, per
// day, either the rendered template or why there is nothing to show.
func (uc *ShowTemplates) Execute(_ context.Context, _ ShowTemplatesInput) (*ShowTemplatesOutput, error) {
	var b strings.Builder
	for _, day := range domain.Weekdays {
		if !uc.docs.Exists(day) {
			fmt.Fprintf(&b, "- No template file for %s. Create some tasks using 'template create'.\n", day)
			continue
		}
		list, err := uc.docs.Read(day)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			fmt.Fprintf(&b, "- Template file for %s is blank. Create some tasks using 'template create'.\n", day)
			continue
		}
		fmt.Fprintf(&b, "- %s:\n%s", day, domain.Render(list))
	}
	return &ShowTemplatesOutput{Text: b.String()}, nil
}
