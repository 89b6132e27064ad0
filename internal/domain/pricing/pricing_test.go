package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelfront/internal/domain/calendar"
	"hotelfront/internal/domain/shared/money"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.Local)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights", date(time.January, 1), date(time.January, 4), 3},
		{"one night", date(time.January, 1), date(time.January, 2), 1},
		{"same day floors to one", date(time.January, 1), date(time.January, 1), 1},
		{"inverted floors to one", date(time.January, 4), date(time.January, 1), 1},
		{"across month boundary", date(time.January, 30), date(time.February, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.January, 1, 23, 59, 0, 0, time.Local)
	early := time.Date(2025, time.January, 4, 0, 1, 0, 0, time.Local)

	assert.Equal(t, 3, Nights(late, early))
}

func TestQuoteStay(t *testing.T) {
	nightly := money.USD(15000)
	iv := calendar.Interval{Start: date(time.January, 1), End: date(time.January, 4)}

	quote, ok := QuoteStay(nightly, iv)
	require.True(t, ok)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, money.USD(45000), quote.Total)
	assert.Equal(t, nightly, quote.Nightly)
}

func TestQuoteStayIncompleteSelection(t *testing.T) {
	nightly := money.USD(15000)

	quote, ok := QuoteStay(nightly, calendar.Interval{Start: date(time.January, 1)})
	assert.False(t, ok)
	assert.Zero(t, quote.Nights)
	assert.True(t, quote.Total.IsZero())

	_, ok = QuoteStay(nightly, calendar.Interval{})
	assert.False(t, ok)
}
