package calendar

import "time"

// DayOf truncates a timestamp to local midnight. All calendar logic compares
// dates at day granularity so a click carrying a time-of-day never shifts the
// selected day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDay reports whether a falls on an earlier calendar day than b. Days
// are compared as dates, not instants, so values from different locations
// order by their civil day.
func BeforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// AfterDay reports whether a falls on a later calendar day than b.
func AfterDay(a, b time.Time) bool {
	return BeforeDay(b, a)
}

// ISO formats a day as YYYY-MM-DD. Formatting happens at the boundary only;
// everything upstream works with local calendar days.
func ISO(t time.Time) string {
	return t.Format("2006-01-02")
}
