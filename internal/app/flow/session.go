package flow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotelfront/internal/app/policies"
	"hotelfront/internal/domain/calendar"
	"hotelfront/internal/domain/hotel"
	"hotelfront/internal/domain/pricing"
)

// Deps are the collaborators a session orchestrates. Now is overridable for
// tests and defaults to time.Now.
type Deps struct {
	Rooms        policies.RoomsPort
	Reservations policies.ReservationsPort
	Logger       *slog.Logger
	Now          func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Session owns the state of one booking, modification or admin-edit journey:
// the date selection, guest count, derived quote and reconciled availability.
// Nothing here is shared across sessions; the mutex exists because the HTTP
// layer serves requests concurrently.
type Session struct {
	id   string
	kind Kind
	deps Deps

	mu          sync.Mutex
	roomType    hotel.RoomType
	reservation *hotel.Reservation
	userID      string
	roomNumber  string

	bounds   calendar.Bounds
	interval calendar.Interval
	guests   int
	quote    pricing.Quote

	status    Status
	errMsg    string
	noRooms   bool
	available []hotel.Room
	availSeq  uint64

	result *hotel.Reservation
}

// NewBooking starts a fresh booking session for a room type. The room type is
// fetched once and treated as immutable for the life of the session.
func NewBooking(ctx context.Context, deps Deps, roomTypeID, userID string) (*Session, error) {
	rt, err := deps.Rooms.RoomTypeByID(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:       uuid.NewString(),
		kind:     KindBooking,
		deps:     deps,
		roomType: *rt,
		userID:   userID,
		bounds:   calendar.Bounds{Min: calendar.DayOf(deps.now())},
		guests:   1,
		status:   StatusSelectingDates,
	}, nil
}

// NewModification starts an edit of one of the user's upcoming reservations,
// seeded with its current dates and guest count.
func NewModification(ctx context.Context, deps Deps, userID, reservationID string) (*Session, error) {
	list, err := deps.Reservations.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := findReservation(list, reservationID)
	if res == nil {
		return nil, ErrReservationNotFound
	}
	rt, err := deps.Rooms.RoomTypeForReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:          uuid.NewString(),
		kind:        KindModification,
		deps:        deps,
		roomType:    *rt,
		reservation: res,
		userID:      userID,
		bounds:      calendar.Bounds{Min: calendar.DayOf(deps.now())},
		guests:      clampGuests(res.NumGuests, rt.MaxGuests),
		status:      StatusSelectingDates,
	}
	s.seedInterval(res)
	return s, nil
}

// NewAdminEdit starts the admin console's reservation editor. The admin
// assigns a concrete room number, so availability reconciliation is skipped
// and readiness is gated on the interval plus the room assignment instead.
func NewAdminEdit(ctx context.Context, deps Deps, reservationID string) (*Session, error) {
	list, err := deps.Reservations.All(ctx)
	if err != nil {
		return nil, err
	}
	res := findReservation(list, reservationID)
	if res == nil {
		return nil, ErrReservationNotFound
	}
	rt, err := deps.Rooms.RoomTypeForReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:          uuid.NewString(),
		kind:        KindAdminEdit,
		deps:        deps,
		roomType:    *rt,
		reservation: res,
		userID:      res.UserID,
		roomNumber:  res.RoomNumber,
		guests:      clampGuests(res.NumGuests, rt.MaxGuests),
		status:      StatusSelectingDates,
	}
	s.seedInterval(res)
	return s, nil
}

// ID returns the session identifier handed to the UI shell.
func (s *Session) ID() string { return s.id }

// Kind returns which flow this session runs.
func (s *Session) Kind() Kind { return s.kind }

// ClickDate feeds one calendar click through the interval state machine and
// recomputes everything derived from the selection.
func (s *Session) ClickDate(day time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusConfirming || s.status == StatusDone {
		// The calendar is disabled at this point; ignore stray clicks.
		return s.snapshotLocked()
	}

	next := calendar.Next(s.interval, day, s.bounds)
	if next == s.interval {
		return s.snapshotLocked()
	}
	s.applyIntervalLocked(next)
	return s.snapshotLocked()
}

// SetGuests adjusts the guest count, clamped to [1, maxGuests]. It is
// independent of the date state machine and only affects the payload.
func (s *Session) SetGuests(n int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests = clampGuests(n, s.roomType.MaxGuests)
	return s.snapshotLocked()
}

// SetRoomNumber reassigns the physical room in the admin editor.
func (s *Session) SetRoomNumber(num string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kind != KindAdminEdit {
		return s.snapshotLocked(), ErrNotAdminSession
	}
	s.roomNumber = num
	s.refreshStatusLocked()
	return s.snapshotLocked(), nil
}

// applyIntervalLocked installs a new selection, invalidates any in-flight
// availability query and recomputes the quote and status.
func (s *Session) applyIntervalLocked(next calendar.Interval) {
	s.interval = next
	s.errMsg = ""
	s.noRooms = false
	s.available = nil
	s.availSeq++

	s.quote, _ = pricing.QuoteStay(s.roomType.PricePerNight, s.interval)
	s.refreshStatusLocked()

	if s.interval.Complete() && s.reconciles() {
		s.status = StatusAwaitingAvailability
		go s.fetchAvailability(s.availSeq, s.interval)
	}
}

// reconciles reports whether this flow gates checkout on room availability.
func (s *Session) reconciles() bool {
	return s.kind != KindAdminEdit
}

func (s *Session) refreshStatusLocked() {
	if s.status == StatusConfirming || s.status == StatusDone {
		return
	}
	if !s.interval.Complete() {
		s.status = StatusSelectingDates
		return
	}
	switch s.kind {
	case KindAdminEdit:
		if s.roomNumber != "" {
			s.status = StatusReadyToCheckout
		} else {
			s.status = StatusSelectingDates
		}
	default:
		if len(s.available) > 0 {
			s.status = StatusReadyToCheckout
		} else {
			s.status = StatusSelectingDates
		}
	}
}

func (s *Session) seedInterval(res *hotel.Reservation) {
	iv := calendar.Interval{}
	if !res.CheckIn.IsZero() {
		iv.Start = calendar.DayOf(res.CheckIn)
	}
	if !res.CheckOut.IsZero() {
		iv.End = calendar.DayOf(res.CheckOut)
	}
	// A reservation with check-out on or before check-in would look complete
	// without being a bookable stay; keep only the check-in so the user
	// reselects the check-out.
	if iv.Complete() && !calendar.AfterDay(iv.End, iv.Start) {
		iv.End = time.Time{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyIntervalLocked(iv)
}

func (s *Session) logf() *slog.Logger {
	if s.deps.Logger != nil {
		return s.deps.Logger
	}
	return slog.Default()
}

func findReservation(list []hotel.Reservation, id string) *hotel.Reservation {
	for i := range list {
		if list[i].ID == id {
			res := list[i]
			return &res
		}
	}
	return nil
}

func clampGuests(n, max int) int {
	if n < 1 {
		return 1
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
