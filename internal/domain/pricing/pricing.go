package pricing

import (
	"time"

	"hotelfront/internal/domain/calendar"
	"hotelfront/internal/domain/shared/daterange"
	"hotelfront/internal/domain/shared/money"
)

// Nights is the whole-day difference between two dates with a floor of one
// night, so same-day or inverted input still prices a single night.
func Nights(checkIn, checkOut time.Time) int {
	sr, err := daterange.New(checkIn, checkOut)
	if err != nil {
		return 1
	}
	return sr.Nights()
}

// Quote is the price of a stay derived from a room type's nightly rate.
type Quote struct {
	Nights  int
	Nightly money.Money
	Total   money.Money
}

// QuoteStay prices a completed interval. The second return is false while the
// selection is incomplete; callers must recompute on every interval or rate
// change so the displayed total never goes stale.
func QuoteStay(nightly money.Money, iv calendar.Interval) (Quote, bool) {
	if !iv.Complete() {
		return Quote{Nightly: nightly}, false
	}
	nights := Nights(iv.Start, iv.End)
	return Quote{
		Nights:  nights,
		Nightly: nightly,
		Total:   nightly.Multiply(int64(nights)),
	}, true
}
