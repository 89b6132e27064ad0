package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"hotelfront/internal/app/dto"
	"hotelfront/internal/app/policies"
)

// CatalogHandler exposes the room-type and room listings the landing pages
// render. Pure passthrough: the backend owns the data.
type CatalogHandler struct {
	Port policies.RoomsPort
}

func (h CatalogHandler) RoomTypes(c *gin.Context) {
	types, err := h.Port.RoomTypes(c.Request.Context())
	if err != nil {
		respondPortError(c, err)
		return
	}
	out := make([]dto.RoomTypeDTO, 0, len(types))
	for _, rt := range types {
		out = append(out, dto.MapRoomType(rt))
	}
	c.JSON(http.StatusOK, out)
}

func (h CatalogHandler) RoomType(c *gin.Context) {
	rt, err := h.Port.RoomTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPortError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapRoomType(*rt))
}

func (h CatalogHandler) Rooms(c *gin.Context) {
	rooms, err := h.Port.Rooms(c.Request.Context())
	if err != nil {
		respondPortError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapRooms(rooms))
}

var _ CatalogHTTP = CatalogHandler{}
