package payments

import (
	"context"
	"encoding/json"
	"errors"
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

var (
	// ErrUnreachable wraps transport failures talking to the processor gateway.
	ErrUnreachable = errors.New("payments: gateway unreachable")
	// ErrAttachRejected is returned when the gateway refuses a method token.
	ErrAttachRejected = errors.New("payments: attach rejected")
)

// Client talks to the payment-processor gateway. Cards are tokenized by the
// processor's own browser SDK before they reach this service; only opaque
// payment-method tokens cross this client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type paymentMethodModel struct {
	PaymentMethodID string `json:"paymentMethodId"`
	Type            string `json:"type"`
	Card            struct {
		Last4    string `json:"last4"`
		ExpMonth int    `json:"expMonth"`
		ExpYear  int    `json:"expYear"`
		Brand    string `json:"brand"`
	} `json:"card"`
}

// AttachPaymentMethod binds a tokenized method to the user's processor
// customer record.
func (c *Client) AttachPaymentMethod(ctx context.Context, userID, paymentMethodToken string) error {
	path := fmt.Sprintf("/users/attach/%s/payment-methods/%s",
		url.PathEscape(userID), url.PathEscape(paymentMethodToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError("attach payment method failed", userID, err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("%w: status %d: %s", ErrAttachRejected, resp.StatusCode, string(snippet))
		c.logError("attach payment method rejected", userID, err)
		return err
	}
	return nil
}

// PaymentMethods lists the user's stored methods for the checkout selector.
func (c *Client) PaymentMethods(ctx context.Context, userID string) ([]hotel.PaymentMethod, error) {
	path := "/users/" + url.PathEscape(userID) + "/payment-methods"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError("list payment methods failed", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("payments: listing methods returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var models []paymentMethodModel
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, fmt.Errorf("payments: decoding methods: %w", err)
	}
	methods := make([]hotel.PaymentMethod, 0, len(models))
	for _, m := range models {
		methods = append(methods, hotel.PaymentMethod{
			ID:       m.PaymentMethodID,
			Type:     m.Type,
			Brand:    m.Card.Brand,
			Last4:    m.Card.Last4,
			ExpMonth: m.Card.ExpMonth,
			ExpYear:  m.Card.ExpYear,
		})
	}
	return methods, nil
}

func (c *Client) logError(msg, userID string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Error(msg, "user_id", userID, "error", err)
}

var _ policies.PaymentsPort = (*Client)(nil)
