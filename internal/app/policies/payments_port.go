package policies

import (
	"context"

	"hotelfront/internal/domain/hotel"
)

// PaymentsPort is the payment-processor surface. Tokenization happens in the
// processor's own client SDK; only opaque method tokens cross this port.
type PaymentsPort interface {
	AttachPaymentMethod(ctx context.Context, userID, paymentMethodToken string) error
	PaymentMethods(ctx context.Context, userID string) ([]hotel.PaymentMethod, error)
}
