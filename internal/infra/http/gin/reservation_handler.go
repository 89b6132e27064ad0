package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"hotelfront/internal/app/dto"
	"hotelfront/internal/app/policies"
	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/shared/daterange"
)

// ReservationHandler exposes the reservation lists and the lifecycle actions
// that sit outside a session: cancel, check-in and check-out act on an
// already confirmed reservation, so no selection state is involved.
type ReservationHandler struct {
	Reservations policies.ReservationsPort
}

func (h ReservationHandler) ByUser(c *gin.Context) {
	list, err := h.Reservations.ByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPortError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapReservations(list))
}

// All lists every reservation for the admin console. An optional
// from/to window (YYYY-MM-DD) narrows the list to stays overlapping it.
func (h ReservationHandler) All(c *gin.Context) {
	window, err := parseStayWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be YYYY-MM-DD with to after from"})
		return
	}
	list, err := h.Reservations.All(c.Request.Context())
	if err != nil {
		respondPortError(c, err)
		return
	}
	if window != nil {
		list = filterOverlapping(list, *window)
	}
	c.JSON(http.StatusOK, dto.MapReservations(list))
}

// parseStayWindow returns nil when no window was requested.
func parseStayWindow(from, to string) (*daterange.StayRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	start, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return nil, err
	}
	end, err := time.ParseInLocation("2006-01-02", to, time.Local)
	if err != nil {
		return nil, err
	}
	window, err := daterange.New(start, end)
	if err != nil {
		return nil, err
	}
	return &window, nil
}

func filterOverlapping(list []hotel.Reservation, window daterange.StayRange) []hotel.Reservation {
	out := make([]hotel.Reservation, 0, len(list))
	for _, res := range list {
		stay, err := daterange.New(res.CheckIn, res.CheckOut)
		if err != nil {
			continue
		}
		if stay.Overlaps(window) {
			out = append(out, res)
		}
	}
	return out
}

func (h ReservationHandler) Cancel(c *gin.Context) {
	if err := h.Reservations.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondPortError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h ReservationHandler) CheckIn(c *gin.Context) {
	res, err := h.Reservations.CheckInGuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPortError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapReservation(*res))
}

func (h ReservationHandler) CheckOut(c *gin.Context) {
	res, err := h.Reservations.CheckOutGuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPortError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapReservation(*res))
}

func (h ReservationHandler) Transaction(c *gin.Context) {
	tx, err := h.Reservations.Transaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPortError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapTransaction(*tx))
}

var _ ReservationsHTTP = ReservationHandler{}
