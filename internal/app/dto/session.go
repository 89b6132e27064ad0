package dto

import (
	"hotelfront/internal/app/flow"
	"hotelfront/internal/domain/calendar"
)

// SessionDTO is the wire form of the controller surface a flow exposes to
// its UI shell.
type SessionDTO struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`

	RoomType RoomTypeDTO `json:"room_type"`

	CheckIn  string   `json:"check_in,omitempty"`
	CheckOut string   `json:"check_out,omitempty"`
	Nights   int      `json:"nights"`
	Nightly  MoneyDTO `json:"nightly_rate"`
	Total    MoneyDTO `json:"total"`

	Guests    int `json:"guests"`
	MaxGuests int `json:"max_guests"`

	CanCheckout      bool      `json:"can_checkout"`
	AvailableRooms   []RoomDTO `json:"available_rooms"`
	NoRoomsAvailable bool      `json:"no_rooms_available"`

	RoomNumber    string          `json:"room_number,omitempty"`
	ReservationID string          `json:"reservation_id,omitempty"`
	Result        *ReservationDTO `json:"result,omitempty"`
}

func MapSession(snap flow.Snapshot) SessionDTO {
	out := SessionDTO{
		ID:               snap.ID,
		Kind:             string(snap.Kind),
		Status:           string(snap.Status),
		ErrorMessage:     snap.ErrorMessage,
		RoomType:         MapRoomType(snap.RoomType),
		Nights:           snap.Nights,
		Nightly:          MapMoney(snap.Nightly),
		Total:            MapMoney(snap.Total),
		Guests:           snap.Guests,
		MaxGuests:        snap.MaxGuests,
		CanCheckout:      snap.CanCheckout,
		AvailableRooms:   MapRooms(snap.AvailableRooms),
		NoRoomsAvailable: snap.NoRoomsAvailable,
		RoomNumber:       snap.RoomNumber,
		ReservationID:    snap.ReservationID,
	}
	if !snap.CheckIn.IsZero() {
		out.CheckIn = calendar.ISO(snap.CheckIn)
	}
	if !snap.CheckOut.IsZero() {
		out.CheckOut = calendar.ISO(snap.CheckOut)
	}
	if snap.Result != nil {
		mapped := MapReservation(*snap.Result)
		out.Result = &mapped
	}
	return out
}
