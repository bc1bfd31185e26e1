package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/teemow/freeslots/internal/interval"
)

// ErrScheduleRange reports a requested horizon that covers no days.
var ErrScheduleRange = errors.New("schedule range must cover at least one day")

const (
	// DefaultBuffer is the padding applied before and after every busy
	// event so meetings are never scheduled back-to-back.
	DefaultBuffer = 15 * time.Minute

	// DefaultMinFree is the absolute floor on emitted availability. Free
	// windows shorter than this are dropped; a requested slot size below
	// it is silently raised to it.
	DefaultMinFree = 45 * time.Minute
)

// Engine computes availability. The zero value is not usable; construct one
// with NewEngine and override fields before the first Compute call if the
// deployment needs a different policy or padding.
type Engine struct {
	Policy  WeekPolicy
	Home    *time.Location
	Buffer  time.Duration
	MinFree time.Duration
}

// NewEngine returns an engine with the default policy, buffer and minimum
// duration floor, anchored to the owner's home timezone.
func NewEngine(home *time.Location) *Engine {
	return &Engine{
		Policy:  DefaultPolicy(),
		Home:    home,
		Buffer:  DefaultBuffer,
		MinFree: DefaultMinFree,
	}
}

// Request carries the caller-supplied parameters of one availability
// computation. Now is an explicit reference instant rather than a clock read
// so results are deterministic and testable.
type Request struct {
	// Now bounds the start of the horizon.
	Now time.Time

	// Days is the look-ahead horizon length; must be positive.
	Days int

	// Attendee is the timezone for presenting results. Defaults to the
	// engine's home zone when nil.
	Attendee *time.Location

	// SlotMinutes requests discretization into fixed slots of this many
	// minutes when positive. Zero keeps the free windows continuous.
	SlotMinutes int

	// Busy is the pre-fetched commitment list from the event source.
	Busy []BusyEvent
}

// Compute returns the open meeting windows within [Now, Now+Days) in the
// attendee's timezone, in chronological order. In continuous mode each
// element is a raw free window; in slot mode each element is one bookable
// slot of the effective slot size.
func (e *Engine) Compute(req Request) ([]interval.Interval, error) {
	if req.Days <= 0 {
		return nil, fmt.Errorf("%w: got %d days", ErrScheduleRange, req.Days)
	}

	attendee := req.Attendee
	if attendee == nil {
		attendee = e.Home
	}

	// Buffer and merge once against the full horizon, not per day.
	busySet, err := Normalize(req.Busy, e.Buffer)
	if err != nil {
		return nil, err
	}

	now := req.Now.In(e.Home)
	horizon := interval.Interval{Start: now, End: now.Add(time.Duration(req.Days) * 24 * time.Hour)}

	slotSize := e.MinFree
	if requested := time.Duration(req.SlotMinutes) * time.Minute; requested > slotSize {
		slotSize = requested
	}

	var out []interval.Interval
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.Home)
	for !day.After(horizon.End) {
		window := e.Policy.WorkWindow(day, e.Home).Clamp(horizon)
		day = day.AddDate(0, 0, 1)
		if window.IsEmpty() {
			continue
		}

		for _, free := range e.subtractBusy(window, busySet) {
			if free.Duration() < e.MinFree {
				continue
			}
			if req.SlotMinutes > 0 {
				out = append(out, discretize(free, slotSize)...)
			} else {
				out = append(out, free)
			}
		}
	}

	for i := range out {
		out[i] = out[i].In(attendee)
	}
	return out, nil
}

// subtractBusy removes every overlapping busy interval from the window,
// feeding the remainder of each subtraction into the next.
func (e *Engine) subtractBusy(window interval.Interval, busySet BusySet) []interval.Interval {
	free := []interval.Interval{window}
	for _, busy := range busySet.Overlapping(window) {
		var next []interval.Interval
		for _, piece := range free {
			next = append(next, piece.Subtract(busy)...)
		}
		free = next
	}
	return free
}

// discretize cuts consecutive slots of size slotSize from the start of the
// window. Leftover room smaller than one slot is discarded; no partial
// trailing slot is emitted.
func discretize(window interval.Interval, slotSize time.Duration) []interval.Interval {
	var slots []interval.Interval
	cursor := window.Start
	for !cursor.Add(slotSize).After(window.End) {
		slots = append(slots, interval.Interval{Start: cursor, End: cursor.Add(slotSize)})
		cursor = cursor.Add(slotSize)
	}
	return slots
}
