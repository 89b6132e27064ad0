package flow

import (
	"time"

	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/shared/money"
)

// Snapshot is the controller surface handed to the UI shell: everything a
// view needs to render the flow, derived from the session under its lock.
type Snapshot struct {
	ID   string
	Kind Kind

	Status       Status
	ErrorMessage string

	RoomType hotel.RoomType

	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Nightly  money.Money
	Total    money.Money

	Guests    int
	MaxGuests int

	CanCheckout      bool
	AvailableRooms   []hotel.Room
	NoRoomsAvailable bool

	RoomNumber    string
	ReservationID string
	Result        *hotel.Reservation
}

// Snapshot returns a point-in-time view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:               s.id,
		Kind:             s.kind,
		Status:           s.status,
		ErrorMessage:     s.errMsg,
		RoomType:         s.roomType,
		CheckIn:          s.interval.Start,
		CheckOut:         s.interval.End,
		Guests:           s.guests,
		MaxGuests:        s.roomType.MaxGuests,
		NoRoomsAvailable: s.noRooms,
		RoomNumber:       s.roomNumber,
		Result:           s.result,
	}
	if s.reservation != nil {
		snap.ReservationID = s.reservation.ID
	}
	if s.interval.Complete() {
		snap.Nights = s.quote.Nights
		snap.Total = s.quote.Total
	}
	snap.Nightly = s.roomType.PricePerNight
	snap.AvailableRooms = append([]hotel.Room(nil), s.available...)
	snap.CanCheckout = s.status == StatusReadyToCheckout || s.status == StatusFailed
	return snap
}
