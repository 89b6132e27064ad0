package dto

import (
	"time"

	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/shared/money"
)

type MoneyDTO struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func MapMoney(value money.Money) MoneyDTO {
	return MoneyDTO{Amount: value.Amount, Currency: value.Currency}
}

type RoomTypeDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight MoneyDTO `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	SquareFootage int      `json:"square_footage"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

func MapRoomType(rt hotel.RoomType) RoomTypeDTO {
	return RoomTypeDTO{
		ID:            rt.ID,
		Name:          rt.Name,
		Description:   rt.Description,
		PricePerNight: MapMoney(rt.PricePerNight),
		MaxGuests:     rt.MaxGuests,
		SquareFootage: rt.SquareFootage,
		Amenities:     rt.Amenities,
		Images:        rt.Images,
	}
}

type RoomDTO struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	TypeID     string `json:"type_id"`
	Status     string `json:"status"`
}

func MapRoom(r hotel.Room) RoomDTO {
	return RoomDTO{ID: r.ID, RoomNumber: r.RoomNumber, TypeID: r.TypeID, Status: r.Status}
}

func MapRooms(rooms []hotel.Room) []RoomDTO {
	out := make([]RoomDTO, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, MapRoom(r))
	}
	return out
}

type ReservationDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	RoomID     string    `json:"room_id"`
	RoomNumber string    `json:"room_number,omitempty"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
	Total      MoneyDTO  `json:"total"`
	Status     string    `json:"status,omitempty"`
	GuestName  string    `json:"guest_name,omitempty"`
}

func MapReservation(res hotel.Reservation) ReservationDTO {
	name := res.GuestFirstName
	if res.GuestLastName != "" {
		if name != "" {
			name += " "
		}
		name += res.GuestLastName
	}
	return ReservationDTO{
		ID:         res.ID,
		UserID:     res.UserID,
		RoomID:     res.RoomID,
		RoomNumber: res.RoomNumber,
		CheckIn:    res.CheckIn,
		CheckOut:   res.CheckOut,
		Guests:     res.NumGuests,
		Total:      MapMoney(res.TotalPrice),
		Status:     res.Status,
		GuestName:  name,
	}
}

func MapReservations(list []hotel.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(list))
	for _, res := range list {
		out = append(out, MapReservation(res))
	}
	return out
}

type TransactionDTO struct {
	ID            string     `json:"id"`
	ReservationID string     `json:"reservation_id"`
	Status        string     `json:"status"`
	Amount        MoneyDTO   `json:"amount"`
	Last4         string     `json:"last4,omitempty"`
	AuthorizedAt  *time.Time `json:"authorized_at,omitempty"`
	CapturedAt    *time.Time `json:"captured_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

func MapTransaction(tx hotel.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            tx.ID,
		ReservationID: tx.ReservationID,
		Status:        tx.Status,
		Amount:        MapMoney(tx.Amount),
		Last4:         tx.Last4,
		AuthorizedAt:  optionalTime(tx.AuthorizedAt),
		CapturedAt:    optionalTime(tx.CapturedAt),
		CancelledAt:   optionalTime(tx.CancelledAt),
	}
}

type PaymentMethodDTO struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}

func MapPaymentMethods(methods []hotel.PaymentMethod) []PaymentMethodDTO {
	out := make([]PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentMethodDTO{
			ID:       m.ID,
			Type:     m.Type,
			Brand:    m.Brand,
			Last4:    m.Last4,
			ExpMonth: m.ExpMonth,
			ExpYear:  m.ExpYear,
		})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
