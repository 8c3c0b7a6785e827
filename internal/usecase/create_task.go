package usecase

import (
	"context"
	"strings"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// CreateTaskInput is the input for CreateTask.
type CreateTaskInput struct {
	Content string
}

// CreateTaskOutput is the result of CreateTask.
type CreateTaskOutput struct {
	Task domain.Task
	List domain.TaskList
	Text string
}

// CreateTask appends a new not-done task to today's list.
type CreateTask struct {
	docs  domain.DocumentStore
	clock domain.Clock
}

// NewCreateTask creates a CreateTask use case.
func NewCreateTask(docs domain.DocumentStore, clock domain.Clock) *CreateTask {
	return &CreateTask{docs: docs, clock: clock}
}

// Execute validates the content, ensures today's document, and appends
// the task with the next free id.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	key, _, _, err := ensureDaily(uc.docs, uc.clock)
	if err != nil {
		return nil, err
	}

	list, err := uc.docs.Update(key, func(list domain.TaskList) (domain.TaskList, error) {
		return domain.Append(list, in.Content, domain.StatusNotDone), nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTaskOutput{
		Task: list[len(list)-1],
		List: list,
		Text: domain.Render(list),
	}, nil
}
