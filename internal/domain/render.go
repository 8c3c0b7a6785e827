package domain

import (
	"fmt"
	"strings"
)

// Marks used by the renderer.
const (
	MarkDone    = "✓"
	MarkNotDone = "x"
)

// NoTasksMessage is the fixed sentence rendered for an empty list.
const NoTasksMessage = "No tasks found!\n"

// Render formats a task list one line per task as
//
//	[<mark>] <content> - (ID: <id>)
//
// A task missing either a content or a recognized status attribute is
// skipped silently; a record must carry both to be rendered.
func Render(list TaskList) string {
	if len(list) == 0 {
		return NoTasksMessage
	}
	var b strings.Builder
	for _, t := range list {
		content, ok := t.Content()
		if !ok {
			continue
		}
		status, ok := t.Status()
		if !ok {
			continue
		}
		mark := MarkNotDone
		if status != StatusNotDone {
			mark = MarkDone
		}
		fmt.Fprintf(&b, "[%s] %s - (ID: %d)\n", mark, content, t.ID)
	}
	return b.String()
}
