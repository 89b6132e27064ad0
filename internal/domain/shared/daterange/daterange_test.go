package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelfront/internal/domain/calendar"
)

func TestNewValidRange(t *testing.T) {
	sr, err := New(
		time.Date(2025, time.March, 10, 15, 30, 0, 0, time.Local),
		time.Date(2025, time.March, 13, 9, 0, 0, 0, time.Local),
	)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", sr.CheckInISO())
	assert.Equal(t, "2025-03-13", sr.CheckOutISO())
	assert.Equal(t, 3, sr.Nights())
}

func TestNewRejectsInvertedAndSameDay(t *testing.T) {
	in := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)

	_, err := New(in, in)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(in, in.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestOverlaps(t *testing.T) {
	mk := func(inDay, outDay int) StayRange {
		sr, err := New(
			time.Date(2025, time.March, inDay, 0, 0, 0, 0, time.Local),
			time.Date(2025, time.March, outDay, 0, 0, 0, 0, time.Local),
		)
		require.NoError(t, err)
		return sr
	}

	assert.True(t, mk(10, 13).Overlaps(mk(12, 15)))
	assert.True(t, mk(10, 13).Overlaps(mk(11, 12)))
	// Back-to-back stays share a turnover day, not a night.
	assert.False(t, mk(10, 13).Overlaps(mk(13, 15)))
	assert.False(t, mk(10, 13).Overlaps(mk(15, 18)))
}

func TestFromInterval(t *testing.T) {
	iv := calendar.Interval{
		Start: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local),
	}

	sr, err := FromInterval(iv)
	require.NoError(t, err)
	assert.Equal(t, 2, sr.Nights())

	_, err = FromInterval(calendar.Interval{Start: iv.Start})
	assert.ErrorIs(t, err, ErrIncomplete)
}
