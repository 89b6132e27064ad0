package ginserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelfront/internal/app/flow"
	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/shared/money"
	"hotelfront/internal/infra/config"
	"hotelfront/internal/infra/obs"
	"hotelfront/internal/infra/storage/memory"
)

type stubRooms struct{}

func (stubRooms) RoomTypes(ctx context.Context) ([]hotel.RoomType, error) { return nil, nil }
func (stubRooms) RoomTypeByID(ctx context.Context, id string) (*hotel.RoomType, error) {
	if id != "rt-1" {
		return nil, hotel.ErrRoomTypeNotFound
	}
	return &hotel.RoomType{ID: "rt-1", Name: "Deluxe King", PricePerNight: money.USD(15000), MaxGuests: 4}, nil
}
func (stubRooms) RoomTypeForReservation(ctx context.Context, id string) (*hotel.RoomType, error) {
	return nil, hotel.ErrRoomTypeNotFound
}
func (stubRooms) Rooms(ctx context.Context) ([]hotel.Room, error) { return nil, nil }
func (stubRooms) AvailableRooms(ctx context.Context, roomTypeID, checkIn, checkOut string) ([]hotel.Room, error) {
	return []hotel.Room{{ID: "room-101", RoomNumber: "101", TypeID: roomTypeID}}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewSessionStore(time.Minute)
	handler := SessionHandler{
		Deps:  flow.Deps{Rooms: stubRooms{}},
		Store: store,
	}
	return NewServer(config.Config{Env: "test", HTTPAddr: ":0"},
		obs.Middleware{}, obs.HealthHandlers{}, Handlers{Sessions: handler}).Handler
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBookingSessionOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/booking-sessions",
		`{"room_type_id":"rt-1","user_id":"user-7"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "SELECTING_DATES", created.Status)

	base := "/api/v1/sessions/" + created.ID
	rec = doJSON(t, router, http.MethodPost, base+"/dates", `{"day":"2027-11-10"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doJSON(t, router, http.MethodPost, base+"/dates", `{"day":"2027-11-13"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var snap struct {
		Status   string `json:"status"`
		Nights   int    `json:"nights"`
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 3, snap.Nights)
	assert.Equal(t, "2027-11-10", snap.CheckIn)
	assert.Equal(t, "2027-11-13", snap.CheckOut)

	require.Eventually(t, func() bool {
		rec := doJSON(t, router, http.MethodGet, base, "")
		var got struct {
			Status      string `json:"status"`
			CanCheckout bool   `json:"can_checkout"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		return got.CanCheckout && got.Status == "READY_TO_CHECKOUT"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestBookingSessionValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/booking-sessions", `{"user_id":"user-7"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/booking-sessions",
		`{"room_type_id":"rt-unknown","user_id":"user-7"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionLookupMiss(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBadDayFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/booking-sessions",
		`{"room_type_id":"rt-1","user_id":"user-7"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+created.ID+"/dates",
		`{"day":"Nov 10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/booking-sessions",
		`{"room_type_id":"rt-1","user_id":"user-7"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/sessions/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
