package domain

import "testing"

func TestRender(t *testing.T) {
	list := Append(nil, "Wake up", StatusNotDone)
	list = Append(list, "Eat breakfast", StatusDone)

	got := Render(list)
	want := "[x] Wake up - (ID: 0)\n[✓] Eat breakfast - (ID: 1)\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(nil); got != NoTasksMessage {
		t.Errorf("Render(nil) = %q, want %q", got, NoTasksMessage)
	}
	if got := Render(TaskList{}); got != NoTasksMessage {
		t.Errorf("Render(empty) = %q, want %q", got, NoTasksMessage)
	}
}

func TestRender_SkipsIncompleteTasks(t *testing.T) {
	list := TaskList{
		{ID: 0, Attrs: []Attr{{Name: AttrContent, Value: "no status"}}},
		{ID: 1, Attrs: []Attr{{Name: AttrStatus, Value: 0}}},
		NewTask(2, "complete", StatusNotDone),
	}

	got := Render(list)
	want := "[x] complete - (ID: 2)\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_UnknownAttributesIgnored(t *testing.T) {
	task := NewTask(0, "with extras", StatusDone)
	task.Attrs = append(task.Attrs, Attr{Name: "priority", Value: "high"})

	got := Render(TaskList{task})
	want := "[✓] with extras - (ID: 0)\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
