package domain

// Seed returns the initial daily list for a day whose weekday template is
// tpl. Template ids are preserved as-is: this runs before the first write
// of the day, so no daily ids exist to collide with. A missing template
// seeds an empty list.
func Seed(tpl TaskList) TaskList {
	return tpl.Clone()
}

// Merge rebases an existing daily list onto its weekday template. The
// template's tasks come first and keep their original ids; every prior
// daily task is then re-appended with a fresh id computed against the
// growing result. Daily tasks keep their content and status but end up
// renumbered after the template tasks.
func Merge(tpl, daily TaskList) TaskList {
	merged := tpl.Clone()
	for _, t := range daily {
		rebased := t.clone()
		rebased.ID = NextID(merged)
		merged = append(merged, rebased)
	}
	return merged
}
