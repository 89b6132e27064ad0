package hotelapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelfront/internal/app/policies"
	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/shared/money"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second, nil)
}

func TestRoomTypeByIDConvertsPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/room-types/rt-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":            "rt-1",
			"name":          "Deluxe King",
			"pricePerNight": 149.99,
			"maxGuests":     4,
		})
	})

	rt, err := client.RoomTypeByID(context.Background(), "rt-1")
	require.NoError(t, err)
	assert.Equal(t, money.USD(14999), rt.PricePerNight)
	assert.Equal(t, 4, rt.MaxGuests)
}

func TestAvailableRoomsQueryShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms/rt-1/available", r.URL.Path)
		assert.Equal(t, []string{"2025-11-10", "2025-11-13"}, r.URL.Query()["dates"])
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "room-101", "roomNumber": "101", "typeId": "rt-1"},
		})
	})

	rooms, err := client.AvailableRooms(context.Background(), "rt-1", "2025-11-10", "2025-11-13")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
}

func TestAvailableRoomsEmptyListIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	rooms, err := client.AvailableRooms(context.Background(), "rt-1", "2025-11-10", "2025-11-13")
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestCreateSendsDollarsOnTheWire(t *testing.T) {
	var got createReservationRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reservations/new", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"id": "res-1", "userId": got.UserID, "totalPrice": got.TotalPrice,
			"checkIn": got.CheckIn, "checkOut": got.CheckOut,
		})
	})

	res, err := client.Create(context.Background(), hotel.CheckoutPayload{
		RoomID:          "room-101",
		RoomTypeID:      "rt-1",
		CheckIn:         "2025-11-10",
		CheckOut:        "2025-11-13",
		NumGuests:       2,
		TotalPrice:      money.USD(45000),
		UserID:          "user-7",
		PaymentMethodID: "pm-42",
	})
	require.NoError(t, err)
	assert.InDelta(t, 450.0, got.TotalPrice, 1e-9)
	assert.Equal(t, "pm-42", got.PaymentMethodID)
	assert.Equal(t, money.USD(45000), res.TotalPrice)
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), res.CheckIn)
}

func TestUpdateHitsReservationUpdateRoute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/reservations/res-55/update", r.URL.Path)
		var got updateReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "204", got.RoomNumber)
		json.NewEncoder(w).Encode(map[string]any{"id": "res-55", "totalPrice": got.TotalPrice})
	})

	_, err := client.Update(context.Background(), hotel.ModificationPayload{
		ReservationID: "res-55",
		CheckIn:       "2025-11-10",
		CheckOut:      "2025-11-13",
		NumGuests:     2,
		TotalPrice:    money.USD(45000),
		RoomNumber:    "204",
	})
	require.NoError(t, err)
}

func TestBackendErrorMessageSurvives(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Room is no longer available for these dates"})
	})

	_, err := client.Create(context.Background(), hotel.CheckoutPayload{})
	require.Error(t, err)
	assert.Equal(t, "Room is no longer available for these dates", policies.UserMessage(err))
}

func TestNotFoundWrapsSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no such room type"})
	})

	_, err := client.RoomTypeByID(context.Background(), "rt-missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "no such room type", policies.UserMessage(err))
}

func TestUnreachableBackend(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nil)

	_, err := client.RoomTypes(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, policies.GenericFailureMessage, policies.UserMessage(err))
}

func TestParseWireDateShapes(t *testing.T) {
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), parseWireDate("2025-11-10"))
	assert.Equal(t,
		time.Date(2025, 11, 10, 15, 4, 5, 0, time.UTC),
		parseWireDate("2025-11-10T15:04:05Z"))
	assert.True(t, parseWireDate("").IsZero())
	assert.True(t, parseWireDate("next tuesday").IsZero())
}
