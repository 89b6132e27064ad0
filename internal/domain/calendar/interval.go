package calendar

import "time"

// Interval is an in-progress check-in/check-out selection. A zero time means
// the endpoint is not chosen yet. Once both endpoints are set, Start never
// falls after End.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Complete reports whether both endpoints are chosen.
func (iv Interval) Complete() bool {
	return !iv.Start.IsZero() && !iv.End.IsZero()
}

// Empty reports whether nothing is chosen.
func (iv Interval) Empty() bool {
	return iv.Start.IsZero() && iv.End.IsZero()
}

// Bounds restricts which days are selectable. A zero Min or Max leaves that
// side open.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// Allows reports whether a day is selectable, comparing at day granularity.
func (b Bounds) Allows(day time.Time) bool {
	if !b.Min.IsZero() && BeforeDay(day, b.Min) {
		return false
	}
	if !b.Max.IsZero() && AfterDay(day, b.Max) {
		return false
	}
	return true
}

// Next computes the selection that follows a click on a day, given the
// current selection. It is a pure function: the same inputs always produce
// the same output and the current interval is never mutated.
//
// Clicking an already-selected endpoint deselects it. A click with only one
// endpoint set completes the interval when the order works out, otherwise it
// restarts from the clicked day. A third click on a complete interval keeps
// the old start when the click lands after it and restarts when it lands
// before it.
func Next(current Interval, clicked time.Time, b Bounds) Interval {
	// The UI never invokes the handler for disabled cells; stay safe when
	// called directly anyway.
	if !b.Allows(clicked) {
		return current
	}
	day := DayOf(clicked)

	switch {
	case !current.Start.IsZero() && SameDay(day, current.Start):
		return Interval{End: current.End}

	case !current.End.IsZero() && SameDay(day, current.End):
		return Interval{Start: current.Start}

	case current.Start.IsZero() && !current.End.IsZero():
		if BeforeDay(day, current.End) {
			return Interval{Start: day, End: current.End}
		}
		return Interval{Start: current.End, End: day}

	case !current.Start.IsZero() && current.End.IsZero():
		if AfterDay(day, current.Start) {
			return Interval{Start: current.Start, End: day}
		}
		return Interval{Start: day}

	case current.Complete():
		if BeforeDay(day, current.Start) {
			return Interval{Start: day}
		}
		return Interval{Start: current.Start, End: day}

	default:
		return Interval{Start: day}
	}
}
