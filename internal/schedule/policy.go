package schedule

import (
	"time"

	"github.com/teemow/freeslots/internal/interval"
)

// ClockTime is a wall-clock time of day, independent of date and zone.
type ClockTime struct {
	Hour   int
	Minute int
}

// DayWindow is the owner's working hours on a single calendar day.
type DayWindow struct {
	Start ClockTime
	End   ClockTime
}

// WeekPolicy maps a weekday to the owner's working window on that day.
// A weekday with no entry is a non-working day and never yields availability,
// regardless of busy data.
type WeekPolicy map[time.Weekday]DayWindow

// DefaultPolicy returns the stock business-hour rule table: 08:30-17:00 on
// Monday, Tuesday, Thursday and Friday, a later 09:30 start on Wednesday, and
// no hours on weekends.
func DefaultPolicy() WeekPolicy {
	standard := DayWindow{Start: ClockTime{8, 30}, End: ClockTime{17, 0}}
	return WeekPolicy{
		time.Monday:    standard,
		time.Tuesday:   standard,
		time.Wednesday: {Start: ClockTime{9, 30}, End: ClockTime{17, 0}},
		time.Thursday:  standard,
		time.Friday:    standard,
	}
}

// WorkWindow returns the working window for the calendar date of day,
// interpreted in home. Non-working days yield an empty interval anchored at
// local midnight. The mapping is pure and deterministic.
func (p WeekPolicy) WorkWindow(day time.Time, home *time.Location) interval.Interval {
	local := day.In(home)
	year, month, date := local.Date()

	window, ok := p[local.Weekday()]
	if !ok {
		midnight := time.Date(year, month, date, 0, 0, 0, 0, home)
		return interval.Interval{Start: midnight, End: midnight}
	}

	return interval.Interval{
		Start: time.Date(year, month, date, window.Start.Hour, window.Start.Minute, 0, 0, home),
		End:   time.Date(year, month, date, window.End.Hour, window.End.Minute, 0, 0, home),
	}
}
