package daterange

import (
	"errors"
	"math"
	"time"

	"hotelfront/internal/domain/calendar"
)

var (
	ErrInvalidRange = errors.New("daterange: check-out must be after check-in")
	ErrIncomplete   = errors.New("daterange: interval is missing an endpoint")
)

// StayRange is a completed stay: local calendar days for check-in and
// check-out with check-out strictly after check-in.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// New constructs a StayRange validating the single invariant.
func New(checkIn, checkOut time.Time) (StayRange, error) {
	sr := StayRange{CheckIn: calendar.DayOf(checkIn), CheckOut: calendar.DayOf(checkOut)}
	if err := sr.Validate(); err != nil {
		return StayRange{}, err
	}
	return sr, nil
}

// FromInterval converts a completed calendar selection into a stay range.
func FromInterval(iv calendar.Interval) (StayRange, error) {
	if !iv.Complete() {
		return StayRange{}, ErrIncomplete
	}
	return New(iv.Start, iv.End)
}

func (sr StayRange) Validate() error {
	if sr.CheckIn.IsZero() || sr.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !sr.CheckOut.After(sr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

// Nights counts whole days between check-in and check-out. Both endpoints are
// normalized to midnight, so rounding only absorbs zone offset shifts.
func (sr StayRange) Nights() int {
	return int(math.Round(sr.CheckOut.Sub(sr.CheckIn).Hours() / 24))
}

// Overlaps reports whether two stays share at least one night. Ranges are
// half-open, so back-to-back stays do not overlap.
func (sr StayRange) Overlaps(other StayRange) bool {
	return sr.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(sr.CheckOut)
}

// CheckInISO formats the check-in day for the wire.
func (sr StayRange) CheckInISO() string {
	return calendar.ISO(sr.CheckIn)
}

// CheckOutISO formats the check-out day for the wire.
func (sr StayRange) CheckOutISO() string {
	return calendar.ISO(sr.CheckOut)
}
