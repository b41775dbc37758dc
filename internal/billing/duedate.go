package billing

import (
	"time"
)

// NextDueDate returns the next payment due date for a given due day of month,
// relative to now. The candidate is day-of-month `day` in now's month; only a
// candidate strictly before now's calendar date advances one month. A due date
// falling on today is returned unchanged.
//
// Day values past the end of the month normalize forward (day 31 in February
// lands in early March), matching time.Date semantics.
func NextDueDate(day int, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		due = due.AddDate(0, 1, 0)
	}
	return due
}

// FormatDate renders an ISO date string as "January 2, 2006". Values that do
// not parse are shown as stored.
func FormatDate(iso string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}
