package usecase

import (
	"context"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// DeleteTaskInput is the input for DeleteTask.
type DeleteTaskInput struct {
	TaskID int
}

// DeleteTaskOutput is the result of DeleteTask.
type DeleteTaskOutput struct {
	List domain.TaskList
	Text string
}

// DeleteTask removes a task from today's list by id.
type DeleteTask struct {
	docs  domain.DocumentStore
	clock domain.Clock
}

// NewDeleteTask creates a DeleteTask use case.
func NewDeleteTask(docs domain.DocumentStore, clock domain.Clock) *DeleteTask {
	return &DeleteTask{docs: docs, clock: clock}
}

// Execute removes every task carrying the id. ErrTaskNotFound when the
// id matches nothing; the document is left untouched in that case.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if in.TaskID < 0 {
		return nil, domain.ErrInvalidTaskID
	}

	key, _, _, err := ensureDaily(uc.docs, uc.clock)
	if err != nil {
		return nil, err
	}

	list, err := uc.docs.Update(key, func(list domain.TaskList) (domain.TaskList, error) {
		next, changed := domain.Remove(list, in.TaskID)
		if !changed {
			return nil, domain.ErrTaskNotFound
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteTaskOutput{List: list, Text: domain.Render(list)}, nil
}
