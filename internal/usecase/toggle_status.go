package usecase

import (
	"context"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// ToggleStatusInput is the input for ToggleStatus.
type ToggleStatusInput struct {
	TaskID int
}

// ToggleStatusOutput is the result of ToggleStatus.
type ToggleStatusOutput struct {
	List domain.TaskList
	Text string
}

// ToggleStatus flips a task on today's list between done and not done.
type ToggleStatus struct {
	docs  domain.DocumentStore
	clock domain.Clock
}

// NewToggleStatus creates a ToggleStatus use case.
func NewToggleStatus(docs domain.DocumentStore, clock domain.Clock) *ToggleStatus {
	return &ToggleStatus{docs: docs, clock: clock}
}

// Execute flips the status of every task carrying the id.
// ErrTaskNotFound when the id matches nothing.
func (uc *ToggleStatus) Execute(_ context.Context, in ToggleStatusInput) (*ToggleStatusOutput, error) {
	if in.TaskID < 0 {
		return nil, domain.ErrInvalidTaskID
	}

	key, _, _, err := ensureDaily(uc.docs, uc.clock)
	if err != nil {
		return nil, err
	}

	list, err := uc.docs.Update(key, func(list domain.TaskList) (domain.TaskList, error) {
		next, changed := domain.ToggleStatus(list, in.TaskID)
		if !changed {
			return nil, domain.ErrTaskNotFound
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &ToggleStatusOutput{List: list, Text: domain.Render(list)}, nil
}
