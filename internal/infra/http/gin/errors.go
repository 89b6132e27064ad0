package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"hotelfront/internal/app/flow"
	"hotelfront/internal/app/policies"
	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/infra/hotelapi"
)

// respondFlowError maps a session-construction failure to a status code.
func respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, flow.ErrReservationNotFound),
		errors.Is(err, hotel.ErrRoomTypeNotFound),
		errors.Is(err, hotelapi.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": policies.UserMessage(err)})
	default:
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": policies.UserMessage(err)})
	}
}

// respondPortError maps a backend passthrough failure to a status code.
func respondPortError(c *gin.Context, err error) {
	if errors.Is(err, hotelapi.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": policies.UserMessage(err)})
		return
	}
	c.Error(err)
	c.JSON(http.StatusBadGateway, gin.H{"error": policies.UserMessage(err)})
}
