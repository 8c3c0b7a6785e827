package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTask_MarshalWireShape(t *testing.T) {
	list := TaskList{NewTask(0, "A", 0)}

	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `[[0,[{"content":"A"},{"status":0}]]]`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestTask_RoundTrip(t *testing.T) {
	task := NewTask(3, "Call mom", StatusDone)
	task.Attrs = append(task.Attrs, Attr{Name: "note", Value: "after 6pm"})
	list := TaskList{NewTask(0, "Gym", StatusNotDone), task}

	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got TaskList
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(got, list) {
		t.Errorf("round trip = %#v, want %#v", got, list)
	}
}

func TestTask_UnmarshalBareAttrObject(t *testing.T) {
	// A single attribute object in place of the attribute array is read
	// as a one element list.
	var list TaskList
	if err := json.Unmarshal([]byte(`[[0,{"content":"Gym"}]]`), &list); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(list) != 1 || len(list[0].Attrs) != 1 {
		t.Fatalf("Unmarshal() = %#v, want one task with one attribute", list)
	}
	content, ok := list[0].Content()
	if !ok || content != "Gym" {
		t.Errorf("Content() = %q, %v", content, ok)
	}
	if _, ok := list[0].Status(); ok {
		t.Error("Status() present on task stored without one")
	}
}

func TestTask_UnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a pair", `[[0]]`},
		{"extra elements", `[[0,[],[]]]`},
		{"non-numeric id", `[["a",[{"content":"x"}]]]`},
		{"negative id", `[[-1,[{"content":"x"}]]]`},
		{"multi-key attribute", `[[0,[{"content":"x","status":0}]]]`},
		{"attribute not an object", `[[0,["content"]]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list TaskList
			if err := json.Unmarshal([]byte(tt.data), &list); err == nil {
				t.Errorf("Unmarshal(%s) succeeded, want error", tt.data)
			}
		})
	}
}

func TestTask_StatusNormalizedToInt(t *testing.T) {
	var list TaskList
	if err := json.Unmarshal([]byte(`[[0,[{"content":"x"},{"status":1}]]]`), &list); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	status, ok := list[0].Status()
	if !ok || status != 1 {
		t.Errorf("Status() = %d, %v, want 1, true", status, ok)
	}
	if !list[0].Done() {
		t.Error("Done() = false for status 1")
	}
}
