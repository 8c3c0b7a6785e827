package usecase

import (
	"context"
	"strings"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// EditTaskInput is the input for EditTask.
type EditTaskInput struct {
	TaskID  int
	Content string
}

// EditTaskOutput is the result of EditTask.
type EditTaskOutput struct {
	List domain.TaskList
	Text string
}

// EditTask replaces the description of a task on today's list.
type EditTask struct {
	docs  domain.DocumentStore
	clock domain.Clock
}

// NewEditTask creates an EditTask use case.
func NewEditTask(docs domain.DocumentStore, clock domain.Clock) *EditTask {
	return &EditTask{docs: docs, clock: clock}
}

// Execute rewrites the content attribute of every task carrying the id.
// ErrTaskNotFound when the id matches nothing.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.TaskID < 0 {
		return nil, domain.ErrInvalidTaskID
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	key, _, _, err := ensureDaily(uc.docs, uc.clock)
	if err != nil {
		return nil, err
	}

	list, err := uc.docs.Update(key, func(list domain.TaskList) (domain.TaskList, error) {
		next, changed := domain.SetAttr(list, in.TaskID, domain.AttrContent, in.Content)
		if !changed {
			return nil, domain.ErrTaskNotFound
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &EditTaskOutput{List: list, Text: domain.Render(list)}, nil
}
