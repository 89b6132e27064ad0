package flow

import (
	"time"

	"hotelfront/internal/domain/calendar"
)

// DayCell is one cell of a rendered month: either a leading blank or a day
// annotated with its selection state.
type DayCell struct {
	Day        time.Time
	Blank      bool
	Selectable bool
	IsCheckIn  bool
	IsCheckOut bool
	InStay     bool
}

// CalendarMonth renders one month of the picker for this session's bounds
// and current selection.
func (s *Session) CalendarMonth(month time.Time) []DayCell {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid := calendar.MonthGrid(month)
	cells := make([]DayCell, 0, len(grid))
	for _, day := range grid {
		if day.IsZero() {
			cells = append(cells, DayCell{Blank: true})
			continue
		}
		cell := DayCell{
			Day:        day,
			Selectable: s.bounds.Allows(day),
		}
		if !s.interval.Start.IsZero() && calendar.SameDay(day, s.interval.Start) {
			cell.IsCheckIn = true
		}
		if !s.interval.End.IsZero() && calendar.SameDay(day, s.interval.End) {
			cell.IsCheckOut = true
		}
		if s.interval.Complete() &&
			calendar.AfterDay(day, s.interval.Start) && calendar.BeforeDay(day, s.interval.End) {
			cell.InStay = true
		}
		cells = append(cells, cell)
	}
	return cells
}
