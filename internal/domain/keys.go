package domain

import "time"

// dateKeyLayout is the daily list document key, e.g. "01-02-2021".
const dateKeyLayout = "01-02-2006"

// Weekdays lists the template document keys in the display order used by
// the template overview, starting the week on Sunday.
var Weekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DateKey returns the daily list key for the local calendar day of t.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// WeekdayKey returns the template key for the local weekday of t.
func WeekdayKey(t time.Time) string {
	return t.Weekday().String()
}

// ValidWeekday reports whether name is one of the seven English weekday
// names. The match is case-sensitive and exact.
func ValidWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}
