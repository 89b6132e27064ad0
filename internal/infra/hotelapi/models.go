package hotelapi

import (
	"time"

	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/shared/money"
)

// Wire models mirror the backend's JSON field names. Prices travel as float
// dollars on the wire and are converted to integer cents at this boundary.

type roomTypeModel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxGuests     int      `json:"maxGuests"`
	SquareFootage int      `json:"squareFootage"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type roomModel struct {
	ID         string `json:"id"`
	RoomNumber string `json:"roomNumber"`
	TypeID     string `json:"typeId"`
	Status     string `json:"status"`
}

type reservationModel struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	RoomID          string  `json:"roomId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	NumGuests       int     `json:"numGuests"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentMethodID string  `json:"paymentMethodId,omitempty"`
	Status          string  `json:"status,omitempty"`
	RoomNumber      string  `json:"roomNumber,omitempty"`
	FirstName       string  `json:"firstName,omitempty"`
	LastName        string  `json:"lastName,omitempty"`
}

type createReservationRequest struct {
	UserID          string  `json:"userId"`
	RoomID          string  `json:"roomId"`
	RoomTypeID      string  `json:"roomTypeId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	NumGuests       int     `json:"numGuests"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentMethodID string  `json:"paymentMethodId,omitempty"`
}

type updateReservationRequest struct {
	ID         string  `json:"id"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	NumGuests  int     `json:"numGuests"`
	TotalPrice float64 `json:"totalPrice"`
	RoomNumber string  `json:"roomNumber"`
}

type transactionModel struct {
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	ReservationID     string  `json:"reservationId"`
	PaymentIntentID   string  `json:"paymentIntentId"`
	TransactionStatus string  `json:"transactionStatus"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	Last4             string  `json:"last4,omitempty"`
	AuthorizedAt      string  `json:"authorizedAt,omitempty"`
	CapturedAt        string  `json:"capturedAt,omitempty"`
	CancelledAt       string  `json:"cancelledAt,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (m roomTypeModel) toDomain() (hotel.RoomType, error) {
	rate, err := money.FromDollars(m.PricePerNight, "USD")
	if err != nil {
		return hotel.RoomType{}, err
	}
	return hotel.RoomType{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		PricePerNight: rate,
		MaxGuests:     m.MaxGuests,
		SquareFootage: m.SquareFootage,
		Amenities:     m.Amenities,
		Images:        m.Images,
	}, nil
}

func (m roomModel) toDomain() hotel.Room {
	return hotel.Room{
		ID:         m.ID,
		RoomNumber: m.RoomNumber,
		TypeID:     m.TypeID,
		Status:     m.Status,
	}
}

func (m reservationModel) toDomain() (hotel.Reservation, error) {
	total, err := money.FromDollars(m.TotalPrice, "USD")
	if err != nil {
		return hotel.Reservation{}, err
	}
	return hotel.Reservation{
		ID:              m.ID,
		UserID:          m.UserID,
		RoomID:          m.RoomID,
		CheckIn:         parseWireDate(m.CheckIn),
		CheckOut:        parseWireDate(m.CheckOut),
		NumGuests:       m.NumGuests,
		TotalPrice:      total,
		PaymentMethodID: m.PaymentMethodID,
		Status:          m.Status,
		RoomNumber:      m.RoomNumber,
		GuestFirstName:  m.FirstName,
		GuestLastName:   m.LastName,
	}, nil
}

func (m transactionModel) toDomain() (hotel.Transaction, error) {
	currency := m.Currency
	if currency == "" {
		currency = "USD"
	}
	amount, err := money.FromDollars(m.Amount, currency)
	if err != nil {
		return hotel.Transaction{}, err
	}
	return hotel.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		ReservationID:   m.ReservationID,
		PaymentIntentID: m.PaymentIntentID,
		Status:          m.TransactionStatus,
		Amount:          amount,
		Last4:           m.Last4,
		AuthorizedAt:    parseWireDate(m.AuthorizedAt),
		CapturedAt:      parseWireDate(m.CapturedAt),
		CancelledAt:     parseWireDate(m.CancelledAt),
	}, nil
}

// parseWireDate accepts the two shapes the backend emits: a full timestamp or
// a bare YYYY-MM-DD day. A missing or malformed value becomes the zero time.
func parseWireDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}
