package policies

import (
	"context"

	"hotelfront/internal/domain/hotel"
)

// RoomsPort is the room and room-type surface of the hotel backend.
type RoomsPort interface {
	RoomTypes(ctx context.Context) ([]hotel.RoomType, error)
	RoomTypeByID(ctx context.Context, id string) (*hotel.RoomType, error)
	RoomTypeForReservation(ctx context.Context, reservationID string) (*hotel.RoomType, error)
	Rooms(ctx context.Context) ([]hotel.Room, error)
	// AvailableRooms lists rooms of a type free for [checkIn, checkOut),
	// both formatted as YYYY-MM-DD. An empty list is a meaningful result,
	// not an error.
	AvailableRooms(ctx context.Context, roomTypeID, checkIn, checkOut string) ([]hotel.Room, error)
}
