package calendar

import "time"

// MonthGrid lays out one month as an ordered sequence of day cells. The first
// firstWeekday(month) entries are zero times standing for the blanks before
// day 1; the rest are local-midnight dates for day 1..N. Consumers wrap the
// slice into rows of seven. Only the year and month of the reference are read.
func MonthGrid(month time.Time) []time.Time {
	year, m, _ := month.Date()
	first := time.Date(year, m, 1, 0, 0, 0, 0, month.Location())

	leading := int(first.Weekday())
	days := daysIn(year, m, month.Location())

	grid := make([]time.Time, 0, leading+days)
	for i := 0; i < leading; i++ {
		grid = append(grid, time.Time{})
	}
	for day := 1; day <= days; day++ {
		grid = append(grid, time.Date(year, m, day, 0, 0, 0, 0, month.Location()))
	}
	return grid
}

// daysIn counts the days of a month by normalizing day zero of the next month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
