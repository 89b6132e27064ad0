package flow

import (
	"context"

	"hotelfront/internal/app/policies"
	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/shared/daterange"
)

// Confirm assembles the write-once payload for the current selection and
// hands it to the reservation collaborator. On rejection the session returns
// to a retryable state with the selection intact and the collaborator's
// message preserved.
func (s *Session) Confirm(ctx context.Context, paymentMethodID string) (Snapshot, error) {
	s.mu.Lock()
	if s.status == StatusDone {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, ErrSessionFinished
	}
	if s.status != StatusReadyToCheckout && s.status != StatusFailed {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, ErrNotReady
	}

	sr, err := daterange.FromInterval(s.interval)
	if err != nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, ErrNotReady
	}

	kind := s.kind
	checkout, modification := s.buildPayloadsLocked(sr)
	checkout.PaymentMethodID = paymentMethodID
	s.status = StatusConfirming
	s.errMsg = ""
	s.mu.Unlock()

	var created *hotel.Reservation
	if kind == KindBooking {
		created, err = s.deps.Reservations.Create(ctx, checkout)
	} else {
		created, err = s.deps.Reservations.Update(ctx, modification)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logf().Error("confirmation rejected", "session_id", s.id, "kind", kind, "error", err)
		s.status = StatusFailed
		s.errMsg = policies.UserMessage(err)
		return s.snapshotLocked(), err
	}

	s.status = StatusDone
	s.result = created
	s.logf().Info("confirmation accepted", "session_id", s.id, "kind", kind,
		"reservation_id", created.ID, "check_in", sr.CheckInISO(), "check_out", sr.CheckOutISO())
	return s.snapshotLocked(), nil
}

func (s *Session) buildPayloadsLocked(sr daterange.StayRange) (hotel.CheckoutPayload, hotel.ModificationPayload) {
	switch s.kind {
	case KindBooking:
		roomID := ""
		if len(s.available) > 0 {
			roomID = s.available[0].ID
		}
		return hotel.CheckoutPayload{
			RoomID:     roomID,
			RoomTypeID: s.roomType.ID,
			CheckIn:    sr.CheckInISO(),
			CheckOut:   sr.CheckOutISO(),
			NumGuests:  s.guests,
			TotalPrice: s.quote.Total,
			UserID:     s.userID,
		}, hotel.ModificationPayload{}
	case KindAdminEdit:
		return hotel.CheckoutPayload{}, hotel.ModificationPayload{
			ReservationID: s.reservation.ID,
			CheckIn:       sr.CheckInISO(),
			CheckOut:      sr.CheckOutISO(),
			NumGuests:     s.guests,
			TotalPrice:    s.quote.Total,
			RoomNumber:    s.roomNumber,
		}
	default:
		return hotel.CheckoutPayload{}, hotel.ModificationPayload{
			ReservationID: s.reservation.ID,
			CheckIn:       sr.CheckInISO(),
			CheckOut:      sr.CheckOutISO(),
			NumGuests:     s.guests,
			TotalPrice:    s.quote.Total,
			RoomNumber:    s.reservation.RoomNumber,
		}
	}
}
