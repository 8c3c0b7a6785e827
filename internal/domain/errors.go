package domain

import "errors"

// Domain errors. ErrTaskNotFound, ErrTemplateEmpty, and
// ErrPreconditionFailed are non-fatal outcomes the caller layer renders
// as plain messages; the rest indicate genuine failures.
var (
	ErrNotFound           = errors.New("document not found")
	ErrCorruptDocument    = errors.New("document is corrupt")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskID      = errors.New("task id must be a number")
	ErrInvalidWeekday     = errors.New("not a valid day of the week")
	ErrEmptyContent       = errors.New("task description cannot be empty")
	ErrTemplateEmpty      = errors.New("template is empty")
	ErrPreconditionFailed = errors.New("missing either the template or the daily task list")
)
