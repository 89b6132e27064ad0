package flow

import (
	"context"

	"hotelfront/internal/app/policies"
	"hotelfront/internal/domain/calendar"
	"hotelfront/internal/domain/shared/daterange"
)

// fetchAvailability issues exactly one availability query for a completed
// interval. Queries are keyed by a sequence number taken while the interval
// was installed; if the interval changes before the response lands, the
// response is stale and must never reach the session state. Last write wins.
func (s *Session) fetchAvailability(seq uint64, iv calendar.Interval) {
	sr, err := daterange.FromInterval(iv)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if seq == s.availSeq && s.status == StatusAwaitingAvailability {
			s.status = StatusSelectingDates
		}
		return
	}

	// Detached from any HTTP request: the click that triggered the query has
	// long been answered by the time the collaborator responds. The client
	// owns the timeout.
	rooms, err := s.deps.Rooms.AvailableRooms(context.Background(), s.roomType.ID, sr.CheckInISO(), sr.CheckOutISO())

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.availSeq {
		s.logf().Debug("discarding stale availability response",
			"session_id", s.id, "check_in", sr.CheckInISO(), "check_out", sr.CheckOutISO())
		return
	}

	if err != nil {
		s.logf().Error("availability query failed", "session_id", s.id, "error", err)
		s.available = nil
		s.noRooms = false
		s.errMsg = policies.UserMessage(err)
		s.status = StatusSelectingDates
		return
	}

	s.available = rooms
	s.noRooms = len(rooms) == 0
	s.refreshStatusLocked()
}
