package domain

// Mutation operators. All of them are pure: the input list is never
// modified, and the returned flag is the no-op signal. The flag is
// explicit rather than inferred from a before/after comparison because a
// successful delete can legitimately yield an empty list, which an
// equality check cannot tell apart from "nothing matched".

// Append returns the list plus one task holding content and status.
// The new id is assigned by NextID. Append always succeeds.
func Append(list TaskList, content string, status int) TaskList {
	next := make(TaskList, len(list), len(list)+1)
	copy(next, list)
	return append(next, NewTask(NextID(list), content, status))
}

// Remove returns the list without every task whose id matches. When a
// duplicated id slips in through external corruption, all matches go;
// the operators do not re-enforce uniqueness. The flag is false when no
// task matched, in which case the input list is returned as-is.
func Remove(list TaskList, id int) (TaskList, bool) {
	next := make(TaskList, 0, len(list))
	removed := false
	for _, t := range list {
		if t.ID == id {
			removed = true
			continue
		}
		next = append(next, t)
	}
	if !removed {
		return list, false
	}
	return next, true
}

// EditAttr applies transform to every attribute named key on every task
// whose id matches. The flag is false when the id is absent or no matched
// task carries the attribute; it is presence-based, so setting an
// attribute to its current value still counts as a change.
func EditAttr(list TaskList, id int, key string, transform func(any) any) (TaskList, bool) {
	changed := false
	next := make(TaskList, len(list))
	for i, t := range list {
		if t.ID != id {
			next[i] = t
			continue
		}
		edited := t.clone()
		for j, a := range edited.Attrs {
			if a.Name == key {
				edited.Attrs[j].Value = transform(a.Value)
				changed = true
			}
		}
		next[i] = edited
	}
	if !changed {
		return list, false
	}
	return next, true
}

// SetAttr replaces the value of the named attribute.
func SetAttr(list TaskList, id int, key string, value any) (TaskList, bool) {
	return EditAttr(list, id, key, func(any) any { return value })
}

// ToggleStatus flips the status attribute between done and not done.
// Values that are not integers are left untouched.
func ToggleStatus(list TaskList, id int) (TaskList, bool) {
	return EditAttr(list, id, AttrStatus, func(v any) any {
		if n, ok := v.(int); ok {
			return 1 - n
		}
		return v
	})
}
