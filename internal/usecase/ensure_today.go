// Package usecase implements the application operations on top of the
// domain engine and the document store. Each operation is a struct with
// an Execute method taking an Input and returning an Output; non-fatal
// outcomes surface as the domain sentinel errors so callers can render
// them as plain messages.
package usecase

import (
	"context"

	"github.com/kittyjosh111/discord-reminders-bot/internal/domain"
)

// EnsureTodayInput contains no parameters; the operation works on the
// current day.
type EnsureTodayInput struct{}

// EnsureTodayOutput is the result of EnsureToday.
type EnsureTodayOutput struct {
	Key     string
	List    domain.TaskList
	Text    string
	Created bool
}

// EnsureToday guarantees that today's task list document exists, seeding
// it from the weekday template when today has not been touched yet, and
// returns the rendered list.
type EnsureToday struct {
	docs  domain.DocumentStore
	clock domain.Clock
}

// NewEnsureToday creates an EnsureToday use case.
func NewEnsureToday(docs domain.DocumentStore, clock domain.Clock) *EnsureToday {
	return &EnsureToday{docs: docs, clock: clock}
}

// Execute ensures today's document and renders it.
func (uc *EnsureToday) Execute(_ context.Context, _ EnsureTodayInput) (*EnsureTodayOutput, error) {
	key, list, created, err := ensureDaily(uc.docs, uc.clock)
	if err != nil {
		return nil, err
	}
	return &EnsureTodayOutput{
		Key:     key,
		List:    list,
		Text:    domain.Render(list),
		Created: created,
	}, nil
}

// ensureDaily returns today's key and list, creating the document from
// the weekday template (or empty when no template exists) on first
// touch. A template created later in the day never applies retroactively
// here; that is what LoadTemplate is for.
func ensureDaily(docs domain.DocumentStore, clock domain.Clock) (key string, list domain.TaskList, created bool, err error) {
	now := clock.Now()
	key = domain.DateKey(now)

	if docs.Exists(key) {
		list, err = docs.Read(key)
		return key, list, false, err
	}

	var tpl domain.TaskList
	if weekday := domain.WeekdayKey(now); docs.Exists(weekday) {
		tpl, err = docs.Read(weekday)
		if err != nil {
			return "", nil, false, err
		}
	}
	list, err = docs.Write(key, domain.Seed(tpl))
	if err != nil {
		return "", nil, false, err
	}
	return key, list, true, nil
}
