package flow

import "errors"

var (
	ErrReservationNotFound = errors.New("flow: reservation not found")
	ErrNotReady            = errors.New("flow: session is not ready to confirm")
	ErrNotAdminSession     = errors.New("flow: room reassignment is only part of the admin flow")
	ErrSessionFinished     = errors.New("flow: session already completed")
)
