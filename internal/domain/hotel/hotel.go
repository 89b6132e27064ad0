package hotel

import (
	"errors"
	"time"

	"hotelfront/internal/domain/shared/money"
)

var ErrRoomTypeNotFound = errors.New("hotel: room type not found")

// RoomType is a backend-owned category of room. Fetched once per flow session
// and treated as immutable while dates are being selected.
type RoomType struct {
	ID            string
	Name          string
	Description   string
	PricePerNight money.Money
	MaxGuests     int
	SquareFootage int
	Amenities     []string
	Images        []string
}

// Room is a physical numbered unit of a room type.
type Room struct {
	ID         string
	RoomNumber string
	TypeID     string
	Status     string
}

// Reservation mirrors the backend's reservation record.
type Reservation struct {
	ID              string
	UserID          string
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	NumGuests       int
	TotalPrice      money.Money
	PaymentMethodID string
	Status          string
	RoomNumber      string
	GuestFirstName  string
	GuestLastName   string
}

// Transaction is the payment record attached to a reservation, used for the
// customer's receipt view.
type Transaction struct {
	ID              string
	UserID          string
	ReservationID   string
	PaymentIntentID string
	Status          string
	Amount          money.Money
	Last4           string
	AuthorizedAt    time.Time
	CapturedAt      time.Time
	CancelledAt     time.Time
}

// PaymentMethod is a tokenized card held by the payment processor. Raw card
// data never enters this service.
type PaymentMethod struct {
	ID       string
	Type     string
	Brand    string
	Last4    string
	ExpMonth int
	ExpYear  int
}

// CheckoutPayload is built once at confirmation time and handed to the
// reservation collaborator; it is never mutated afterwards.
type CheckoutPayload struct {
	RoomID          string
	RoomTypeID      string
	CheckIn         string
	CheckOut        string
	NumGuests       int
	TotalPrice      money.Money
	UserID          string
	PaymentMethodID string
}

// ModificationPayload carries an edit of an existing reservation.
type ModificationPayload struct {
	ReservationID string
	CheckIn       string
	CheckOut      string
	NumGuests     int
	TotalPrice    money.Money
	RoomNumber    string
}
