package dto

import (
	"hotelfront/internal/app/flow"
	"hotelfront/internal/domain/calendar"
)

// CalendarDTO is one rendered month of the date picker. Cells arrive in
// reading order; clients wrap them into rows of seven.
type CalendarDTO struct {
	Month string    `json:"month"`
	Cells []CellDTO `json:"cells"`
}

type CellDTO struct {
	Day        string `json:"day,omitempty"`
	Blank      bool   `json:"blank,omitempty"`
	Selectable bool   `json:"selectable"`
	IsCheckIn  bool   `json:"is_check_in,omitempty"`
	IsCheckOut bool   `json:"is_check_out,omitempty"`
	InStay     bool   `json:"in_stay,omitempty"`
}

func MapCalendar(month string, cells []flow.DayCell) CalendarDTO {
	out := CalendarDTO{Month: month, Cells: make([]CellDTO, 0, len(cells))}
	for _, cell := range cells {
		mapped := CellDTO{
			Blank:      cell.Blank,
			Selectable: cell.Selectable,
			IsCheckIn:  cell.IsCheckIn,
			IsCheckOut: cell.IsCheckOut,
			InStay:     cell.InStay,
		}
		if !cell.Blank {
			mapped.Day = calendar.ISO(cell.Day)
		}
		out.Cells = append(out.Cells, mapped)
	}
	return out
}
