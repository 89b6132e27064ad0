package policies

import (
	"context"

	"hotelfront/internal/domain/hotel"
)

// ReservationsPort is the reservation surface of the hotel backend. All
// persistence and conflict checking live behind it.
type ReservationsPort interface {
	Create(ctx context.Context, payload hotel.CheckoutPayload) (*hotel.Reservation, error)
	Update(ctx context.Context, payload hotel.ModificationPayload) (*hotel.Reservation, error)
	Cancel(ctx context.Context, id string) error
	CheckInGuest(ctx context.Context, id string) (*hotel.Reservation, error)
	CheckOutGuest(ctx context.Context, id string) (*hotel.Reservation, error)
	All(ctx context.Context) ([]hotel.Reservation, error)
	ByUser(ctx context.Context, userID string) ([]hotel.Reservation, error)
	Transaction(ctx context.Context, reservationID string) (*hotel.Transaction, error)
}
