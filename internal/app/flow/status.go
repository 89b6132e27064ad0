package flow

// Status is the lifecycle of a booking or modification session.
type Status string

const (
	// StatusSelectingDates: the interval is incomplete, or complete with no
	// matching rooms; the continue action stays disabled.
	StatusSelectingDates Status = "SELECTING_DATES"
	// StatusAwaitingAvailability: interval complete, availability query in
	// flight.
	StatusAwaitingAvailability Status = "AWAITING_AVAILABILITY"
	// StatusReadyToCheckout: availability resolved non-empty; the continue
	// action is enabled.
	StatusReadyToCheckout Status = "READY_TO_CHECKOUT"
	// StatusConfirming: the confirmation payload is with the collaborator.
	StatusConfirming Status = "CONFIRMING"
	// StatusDone: the collaborator accepted the payload.
	StatusDone Status = "DONE"
	// StatusFailed: the collaborator rejected the payload. Behaves like
	// StatusReadyToCheckout so the user can retry without reselecting dates.
	StatusFailed Status = "FAILED"
)

// Kind distinguishes the three flows sharing the session machinery.
type Kind string

const (
	KindBooking      Kind = "BOOKING"
	KindModification Kind = "MODIFICATION"
	KindAdminEdit    Kind = "ADMIN_EDIT"
)
