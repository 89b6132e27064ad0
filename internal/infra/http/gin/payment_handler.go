package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"hotelfront/internal/app/dto"
	"hotelfront/internal/app/policies"
)

// PaymentHandler manages a user's stored payment methods. The token in an
// attach request is minted client-side by the processor SDK; this service
// never sees card numbers.
type PaymentHandler struct {
	Payments policies.PaymentsPort
}

type attachPaymentMethodRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h PaymentHandler) Methods(c *gin.Context) {
	methods, err := h.Payments.PaymentMethods(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPortError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapPaymentMethods(methods))
}

func (h PaymentHandler) Attach(c *gin.Context) {
	var req attachPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Payments.AttachPaymentMethod(c.Request.Context(), c.Param("id"), req.Token); err != nil {
		respondPortError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

var _ PaymentsHTTP = PaymentHandler{}
