package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotelfront/internal/app/policies"
	"hotelfront/internal/domain/hotel"
)

// Client talks to the hotel backend API, which owns all availability
// computation, pricing authority and persistence. This service only
// orchestrates.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a backend client. The timeout governs every call; no
// request-level timeouts are layered on top.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) RoomTypes(ctx context.Context) ([]hotel.RoomType, error) {
	var models []roomTypeModel
	if err := c.get(ctx, "/room-types/all", nil, &models); err != nil {
		return nil, err
	}
	types := make([]hotel.RoomType, 0, len(models))
	for _, m := range models {
		rt, err := m.toDomain()
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}

func (c *Client) RoomTypeByID(ctx context.Context, id string) (*hotel.RoomType, error) {
	var m roomTypeModel
	if err := c.get(ctx, "/room-types/"+url.PathEscape(id), nil, &m); err != nil {
		return nil, err
	}
	rt, err := m.toDomain()
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (c *Client) RoomTypeForReservation(ctx context.Context, reservationID string) (*hotel.RoomType, error) {
	var m roomTypeModel
	if err := c.get(ctx, "/room-types/by-reservation/"+url.PathEscape(reservationID), nil, &m); err != nil {
		return nil, err
	}
	rt, err := m.toDomain()
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (c *Client) Rooms(ctx context.Context) ([]hotel.Room, error) {
	var models []roomModel
	if err := c.get(ctx, "/rooms/all", nil, &models); err != nil {
		return nil, err
	}
	return roomsToDomain(models), nil
}

// AvailableRooms queries rooms of a type free for the given stay. The backend
// expects both dates in one repeated "dates" parameter. An empty list is a
// meaningful answer, not an error.
func (c *Client) AvailableRooms(ctx context.Context, roomTypeID, checkIn, checkOut string) ([]hotel.Room, error) {
	query := url.Values{}
	query.Add("dates", checkIn)
	query.Add("dates", checkOut)

	var models []roomModel
	path := "/rooms/" + url.PathEscape(roomTypeID) + "/available"
	if err := c.get(ctx, path, query, &models); err != nil {
		return nil, err
	}
	return roomsToDomain(models), nil
}

func (c *Client) Create(ctx context.Context, payload hotel.CheckoutPayload) (*hotel.Reservation, error) {
	req := createReservationRequest{
		UserID:          payload.UserID,
		RoomID:          payload.RoomID,
		RoomTypeID:      payload.RoomTypeID,
		CheckIn:         payload.CheckIn,
		CheckOut:        payload.CheckOut,
		NumGuests:       payload.NumGuests,
		TotalPrice:      payload.TotalPrice.Dollars(),
		PaymentMethodID: payload.PaymentMethodID,
	}
	var m reservationModel
	if err := c.send(ctx, http.MethodPost, "/reservations/new", req, &m); err != nil {
		return nil, err
	}
	res, err := m.toDomain()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Update(ctx context.Context, payload hotel.ModificationPayload) (*hotel.Reservation, error) {
	req := updateReservationRequest{
		ID:         payload.ReservationID,
		CheckIn:    payload.CheckIn,
		CheckOut:   payload.CheckOut,
		NumGuests:  payload.NumGuests,
		TotalPrice: payload.TotalPrice.Dollars(),
		RoomNumber: payload.RoomNumber,
	}
	var m reservationModel
	path := "/reservations/" + url.PathEscape(payload.ReservationID) + "/update"
	if err := c.send(ctx, http.MethodPut, path, req, &m); err != nil {
		return nil, err
	}
	res, err := m.toDomain()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Cancel(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPut, "/reservations/"+url.PathEscape(id)+"/cancel", nil, nil)
}

func (c *Client) CheckInGuest(ctx context.Context, id string) (*hotel.Reservation, error) {
	return c.reservationAction(ctx, id, "check-in")
}

func (c *Client) CheckOutGuest(ctx context.Context, id string) (*hotel.Reservation, error) {
	return c.reservationAction(ctx, id, "check-out")
}

func (c *Client) All(ctx context.Context) ([]hotel.Reservation, error) {
	return c.listReservations(ctx, "/reservations/all")
}

func (c *Client) ByUser(ctx context.Context, userID string) ([]hotel.Reservation, error) {
	return c.listReservations(ctx, "/reservations/user/"+url.PathEscape(userID))
}

func (c *Client) Transaction(ctx context.Context, reservationID string) (*hotel.Transaction, error) {
	var m transactionModel
	path := "/transactions/by-reservation/" + url.PathEscape(reservationID)
	if err := c.get(ctx, path, nil, &m); err != nil {
		return nil, err
	}
	tx, err := m.toDomain()
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) reservationAction(ctx context.Context, id, action string) (*hotel.Reservation, error) {
	var m reservationModel
	path := "/reservations/" + url.PathEscape(id) + "/" + action
	if err := c.send(ctx, http.MethodPut, path, nil, &m); err != nil {
		return nil, err
	}
	res, err := m.toDomain()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) listReservations(ctx context.Context, path string) ([]hotel.Reservation, error) {
	var models []reservationModel
	if err := c.get(ctx, path, nil, &models); err != nil {
		return nil, err
	}
	list := make([]hotel.Reservation, 0, len(models))
	for _, m := range models {
		res, err := m.toDomain()
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError(req, err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var parsed errorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
			apiErr.Message = parsed.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		c.logError(req, apiErr)
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("hotelapi: decoding %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) logError(req *http.Request, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Error("hotel backend call failed", "method", req.Method, "path", req.URL.Path, "error", err)
}

func roomsToDomain(models []roomModel) []hotel.Room {
	rooms := make([]hotel.Room, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, m.toDomain())
	}
	return rooms
}

var _ policies.RoomsPort = (*Client)(nil)
var _ policies.ReservationsPort = (*Client)(nil)
