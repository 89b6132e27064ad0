package ginserver

import (
	"errors"
	"io"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"hotelfront/internal/app/dto"
	"hotelfront/internal/app/flow"
	"hotelfront/internal/infra/storage/memory"
)

// SessionHandler binds the flow controller surface to HTTP. One session per
// journey; the session ID in the path is the handle the UI shell holds.
type SessionHandler struct {
	Deps  flow.Deps
	Store *memory.SessionStore
}

type createBookingRequest struct {
	RoomTypeID string `json:"room_type_id" binding:"required"`
	UserID     string `json:"user_id" binding:"required"`
}

type createModificationRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	ReservationID string `json:"reservation_id" binding:"required"`
}

type createAdminEditRequest struct {
	ReservationID string `json:"reservation_id" binding:"required"`
}

type clickDateRequest struct {
	Day string `json:"day" binding:"required"`
}

type setGuestsRequest struct {
	Guests int `json:"guests" binding:"required"`
}

type setRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
}

type confirmRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}

func (h SessionHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := flow.NewBooking(c.Request.Context(), h.Deps, req.RoomTypeID, req.UserID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	h.Store.Put(sess)
	c.JSON(http.StatusCreated, dto.MapSession(sess.Snapshot()))
}

func (h SessionHandler) CreateModification(c *gin.Context) {
	var req createModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := flow.NewModification(c.Request.Context(), h.Deps, req.UserID, req.ReservationID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	h.Store.Put(sess)
	c.JSON(http.StatusCreated, dto.MapSession(sess.Snapshot()))
}

func (h SessionHandler) CreateAdminEdit(c *gin.Context) {
	var req createAdminEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := flow.NewAdminEdit(c.Request.Context(), h.Deps, req.ReservationID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	h.Store.Put(sess)
	c.JSON(http.StatusCreated, dto.MapSession(sess.Snapshot()))
}

func (h SessionHandler) Get(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.MapSession(sess.Snapshot()))
}

// Calendar renders one month of the date picker for this session. The month
// defaults to the current one and is addressed as YYYY-MM.
func (h SessionHandler) Calendar(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be formatted YYYY-MM"})
			return
		}
		month = parsed
	}
	c.JSON(http.StatusOK, dto.MapCalendar(month.Format("2006-01"), sess.CalendarMonth(month)))
}

func (h SessionHandler) ClickDate(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	var req clickDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	day, err := time.ParseInLocation("2006-01-02", req.Day, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be formatted YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, dto.MapSession(sess.ClickDate(day)))
}

func (h SessionHandler) SetGuests(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	var req setGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MapSession(sess.SetGuests(req.Guests)))
}

func (h SessionHandler) SetRoom(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	var req setRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := sess.SetRoomNumber(req.RoomNumber)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MapSession(snap))
}

// Confirm hands the payload to the backend. A collaborator rejection is part
// of the controller surface, not a transport error: the snapshot comes back
// with status FAILED and the backend's message, and the client may retry.
func (h SessionHandler) Confirm(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := sess.Confirm(c.Request.Context(), req.PaymentMethodID)
	switch {
	case errors.Is(err, flow.ErrNotReady), errors.Is(err, flow.ErrSessionFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusBadGateway, dto.MapSession(snap))
	default:
		c.JSON(http.StatusOK, dto.MapSession(snap))
	}
}

func (h SessionHandler) Delete(c *gin.Context) {
	h.Store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h SessionHandler) lookup(c *gin.Context) (*flow.Session, bool) {
	sess, err := h.Store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return nil, false
	}
	return sess, true
}

var _ SessionHTTP = SessionHandler{}
