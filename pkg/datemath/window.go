package datemath

import "time"

// Window is the half-open range [StartOfToday, StartOfTomorrow).
type Window struct {
	StartOfToday    time.Time
	StartOfTomorrow time.Time
}

// NewWindow returns the calendar-day window containing now, in now's location.
// The upper bound is the next calendar midnight, not now+24h, so DST days stay whole days.
func NewWindow(now time.Time) Window {
	start := StartOfDay(now)
	return Window{
		StartOfToday:    start,
		StartOfTomorrow: StartOfDay(start.AddDate(0, 0, 1)),
	}
}

// Today is NewWindow(clock.Now()).
func Today(clock Clock) Window {
	return NewWindow(clock.Now())
}

// Contains reports whether t falls inside the window. StartOfTomorrow is excluded.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.StartOfToday) && t.Before(w.StartOfTomorrow)
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}
