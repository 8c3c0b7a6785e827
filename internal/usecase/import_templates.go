package usecase

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// ImportTemplatesInput is the input for ImportTemplates. Source is a
// YAML document mapping weekday names to lists of task descriptions:
//
//	Monday:
//	  - Wake up
//	  - Gym
//	Friday:
//	  - Take out trash
type ImportTemplatesInput struct {
	Source []byte
}

// ImportTemplatesOutput is the result of ImportTemplates. Imported maps
// each touched weekday to the number of tasks appended.
type ImportTemplatesOutput struct {
	Imported map[string]int
	Text     string
}

// ImportTemplates bulk-appends template tasks for several weekdays from
// a YAML document.
type ImportTemplates struct {
	docs domain.DocumentStore
}

// NewImportTemplates creates an ImportTemplates use case.
func NewImportTemplates(docs domain.DocumentStore) *ImportTemplates {
	return &ImportTemplates{docs: docs}
}

// Execute parses and validates the whole document before touching any
// template, so a single bad weekday name rejects the import with no
// partial writes.
func (uc *ImportTemplates) Execute(ctx context.Context, in ImportTemplatesInput) (*ImportTemplatesOutput, error) {
	var doc map[string][]string
	if err := yaml.Unmarshal(in.Source, &doc); err != nil {
		return nil, fmt.Errorf("parse template document: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("template document is empty")
	}
	for day := range doc {
		if !domain.ValidWeekday(day) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidWeekday, day)
		}
	}

	create := NewCreateTemplate(uc.docs)
	imported := make(map[string]int, len(doc))
	var b strings.Builder
	for _, day := range domain.Weekdays {
		contents, ok := doc[day]
		if !ok {
			continue
		}
		out, err := create.Execute(ctx, CreateTemplateInput{Weekday: day, Contents: contents})
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", day, err)
		}
		appended := 0
		for _, c := range contents {
			if strings.TrimSpace(c) != "" {
				appended++
			}
		}
		imported[day] = appended
		fmt.Fprintf(&b, "- %s:\n%s", day, out.Text)
	}

	return &ImportTemplatesOutput{Imported: imported, Text: b.String()}, nil
}
