package hotelapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("hotelapi: not found")
	// ErrUnreachable wraps transport-level failures talking to the backend.
	ErrUnreachable = errors.New("hotelapi: backend unreachable")
)

// APIError is a non-2xx response from the hotel backend. Message carries the
// backend's own error text and is safe to show to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hotelapi: backend returned status %d: %s", e.Status, e.Message)
}

// UserMessage exposes the backend's message for inline display.
func (e *APIError) UserMessage() string {
	return e.Message
}
