package domain

import "time"

// DocumentStore owns the durable task list documents. Every mutation goes
// read, transform, write; no component keeps an authoritative in-memory
// copy between calls.
type DocumentStore interface {
	// Read returns the list stored under key. ErrNotFound when no
	// document exists, ErrCorruptDocument when it cannot be parsed.
	Read(key string) (TaskList, error)
	// Write overwrites the document under key in full and returns the
	// same list for call chaining. The write is atomic: readers never
	// observe a partially written document.
	Write(key string, list TaskList) (TaskList, error)
	// Exists reports whether a document exists under key. No side effects.
	Exists(key string) bool
	// Update applies fn to the stored list and writes the result back,
	// holding the key's exclusive lock across the whole read-transform-
	// write. When fn returns an error nothing is written and the error is
	// passed through.
	Update(key string, fn func(TaskList) (TaskList, error)) (TaskList, error)
}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
