// Package domain contains the task list engine: the task record model,
// the pure mutation operators, the template merge algorithm, and the
// text renderer.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attribute names the engine interprets. The attribute set on a task is
// open ended; anything else round-trips through storage untouched.
const (
	AttrContent = "content"
	AttrStatus  = "status"
)

// Status values. Any non-zero status counts as done.
const (
	StatusNotDone = 0
	StatusDone    = 1
)

// Attr is one named attribute of a task. Values are strings for content
// and small integers for status; unknown attributes keep whatever JSON
// value they were stored with.
type Attr struct {
	Name  string
	Value any
}

// Task is one entry of a daily or template list. The id is unique within
// a list and assigned by NextID; attributes keep their stored order.
type Task struct {
	ID    int
	Attrs []Attr
}

// TaskList is an ordered sequence of tasks scoped to one document.
type TaskList []Task

// NewTask builds a task with the given id, content, and status.
func NewTask(id int, content string, status int) Task {
	return Task{
		ID: id,
		Attrs: []Attr{
			{Name: AttrContent, Value: content},
			{Name: AttrStatus, Value: status},
		},
	}
}

// Attr returns the value of the named attribute. Absence is not an error;
// callers must treat the false return as "attribute not found".
func (t Task) Attr(name string) (any, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// Content returns the content attribute. The flag is false when the
// attribute is absent or not a string.
func (t Task) Content() (string, bool) {
	v, ok := t.Attr(AttrContent)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Status returns the status attribute. The flag is false when the
// attribute is absent or not an integer.
func (t Task) Status() (int, bool) {
	v, ok := t.Attr(AttrStatus)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Done reports whether the task carries a non-zero status.
func (t Task) Done() bool {
	n, ok := t.Status()
	return ok && n != StatusNotDone
}

// clone returns a task whose attribute slice is independent of the receiver.
func (t Task) clone() Task {
	attrs := make([]Attr, len(t.Attrs))
	copy(attrs, t.Attrs)
	return Task{ID: t.ID, Attrs: attrs}
}

// Clone returns a deep copy of the list. Mutation operators never touch
// their input, so callers can hold the original across a failed write.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return nil
	}
	next := make(TaskList, len(l))
	for i, t := range l {
		next[i] = t.clone()
	}
	return next
}

// NextID returns the id for the next created task: max of the current ids
// plus one, or 0 for an empty list. The max is computed over current
// members only, so a gap left by deleting the highest id is not refilled.
func NextID(l TaskList) int {
	if len(l) == 0 {
		return 0
	}
	max := l[0].ID
	for _, t := range l[1:] {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// MarshalJSON encodes the task in the storage shape: a two element array
// of id and an array of single-key attribute objects.
func (t Task) MarshalJSON() ([]byte, error) {
	attrs := make([]map[string]any, len(t.Attrs))
	for i, a := range t.Attrs {
		attrs[i] = map[string]any{a.Name: a.Value}
	}
	return json.Marshal([2]any{t.ID, attrs})
}

// UnmarshalJSON decodes the storage shape. A bare attribute object in
// place of the attribute array is accepted and read as a one element list.
func (t *Task) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("task entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("task entry must be an [id, attrs] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &t.ID); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	if t.ID < 0 {
		return fmt.Errorf("task id must be non-negative, got %d", t.ID)
	}
	raws, err := attrMessages(pair[1])
	if err != nil {
		return err
	}
	t.Attrs = make([]Attr, 0, len(raws))
	for _, raw := range raws {
		attr, err := parseAttr(raw)
		if err != nil {
			return err
		}
		t.Attrs = append(t.Attrs, attr)
	}
	return nil
}

func attrMessages(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return []json.RawMessage{raw}, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("task attributes: %w", err)
	}
	return list, nil
}

func parseAttr(raw json.RawMessage) (Attr, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return Attr{}, fmt.Errorf("task attribute: %w", err)
	}
	if len(obj) != 1 {
		return Attr{}, fmt.Errorf("task attribute must be a single-key object, got %d keys", len(obj))
	}
	for name, value := range obj {
		return Attr{Name: name, Value: normalizeValue(value)}, nil
	}
	return Attr{}, nil // unreachable
}

// normalizeValue turns json.Number into int where possible so that status
// values compare and toggle as integers after a round trip.
func normalizeValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
