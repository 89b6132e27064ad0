package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.Local)
}

func TestNextTransitions(t *testing.T) {
	open := Bounds{}

	tests := []struct {
		name    string
		current Interval
		clicked time.Time
		want    Interval
	}{
		{
			name:    "first click starts the selection",
			current: Interval{},
			clicked: day(10),
			want:    Interval{Start: day(10)},
		},
		{
			name:    "second click after start completes",
			current: Interval{Start: day(10)},
			clicked: day(13),
			want:    Interval{Start: day(10), End: day(13)},
		},
		{
			name:    "second click before start restarts",
			current: Interval{Start: day(10)},
			clicked: day(7),
			want:    Interval{Start: day(7)},
		},
		{
			name:    "clicking the start deselects it",
			current: Interval{Start: day(10), End: day(13)},
			clicked: day(10),
			want:    Interval{End: day(13)},
		},
		{
			name:    "clicking the end deselects it",
			current: Interval{Start: day(10), End: day(13)},
			clicked: day(13),
			want:    Interval{Start: day(10)},
		},
		{
			name:    "click before a lone end fills the start",
			current: Interval{End: day(13)},
			clicked: day(9),
			want:    Interval{Start: day(9), End: day(13)},
		},
		{
			name:    "click after a lone end swaps it into the start",
			current: Interval{End: day(13)},
			clicked: day(20),
			want:    Interval{Start: day(13), End: day(20)},
		},
		{
			name:    "third click after start replaces the end",
			current: Interval{Start: day(10), End: day(13)},
			clicked: day(18),
			want:    Interval{Start: day(10), End: day(18)},
		},
		{
			name:    "third click inside the interval shortens it",
			current: Interval{Start: day(10), End: day(18)},
			clicked: day(12),
			want:    Interval{Start: day(10), End: day(12)},
		},
		{
			name:    "third click before start restarts",
			current: Interval{Start: day(10), End: day(13)},
			clicked: day(5),
			want:    Interval{Start: day(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.current, tt.clicked, open))
		})
	}
}

func TestNextOutOfBoundsIsNoOp(t *testing.T) {
	b := Bounds{Min: day(10), Max: day(20)}
	current := Interval{Start: day(12)}

	assert.Equal(t, current, Next(current, day(9), b))
	assert.Equal(t, current, Next(current, day(21), b))
	assert.Equal(t, Interval{Start: day(12), End: day(20)}, Next(current, day(20), b))
}

func TestNextDoesNotMutateInput(t *testing.T) {
	current := Interval{Start: day(10), End: day(13)}
	_ = Next(current, day(5), Bounds{})

	assert.Equal(t, Interval{Start: day(10), End: day(13)}, current)
}

func TestNextNormalizesClickedTimestamp(t *testing.T) {
	clicked := time.Date(2025, time.October, 10, 16, 45, 12, 0, time.Local)
	got := Next(Interval{}, clicked, Bounds{})

	assert.Equal(t, Interval{Start: day(10)}, got)
}

func TestNextNeverProducesInvertedInterval(t *testing.T) {
	days := []time.Time{day(3), day(8), day(8), day(15), day(1), day(27), day(15), day(3)}

	iv := Interval{}
	for _, d := range days {
		iv = Next(iv, d, Bounds{})
		if iv.Complete() {
			assert.False(t, iv.End.Before(iv.Start))
		}
	}
}

func TestBoundsAllowsComparesByDay(t *testing.T) {
	b := Bounds{Min: day(10)}
	lateOnMinDay := time.Date(2025, time.October, 10, 23, 0, 0, 0, time.Local)

	assert.True(t, b.Allows(lateOnMinDay))
	assert.False(t, b.Allows(day(9)))
}
