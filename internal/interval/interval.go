package interval

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval reports an interval whose start lies after its end.
// Callers can match it with errors.Is.
var ErrInvalidInterval = errors.New("interval start is after end")

// Interval is a half-open time range [Start, End). An interval with
// Start == End is empty and carries no availability.
type Interval struct {
	Start time.Time
	End   time.Time
}

// New creates an interval after validating that start does not lie after end.
func New(start, end time.Time) (Interval, error) {
	if start.After(end) {
		return Interval{}, fmt.Errorf("%w: start %s, end %s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// MustNew is New for intervals known to be well-formed, typically in tests
// and policy tables. It panics on a malformed interval.
func MustNew(start, end time.Time) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// IsEmpty reports whether the interval covers no time at all.
func (iv Interval) IsEmpty() bool {
	return !iv.Start.Before(iv.End)
}

// Duration returns End - Start. It is never negative for a validated interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether the two half-open intervals share any instant.
// Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Adjacent reports whether the intervals touch end-to-start in either order.
func (iv Interval) Adjacent(other Interval) bool {
	return iv.End.Equal(other.Start) || other.End.Equal(iv.Start)
}

// Merge combines two overlapping or adjacent intervals into their union.
func (iv Interval) Merge(other Interval) (Interval, error) {
	if !iv.Overlaps(other) && !iv.Adjacent(other) {
		return Interval{}, fmt.Errorf("cannot merge disjoint intervals [%s, %s) and [%s, %s)",
			iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339),
			other.Start.Format(time.RFC3339), other.End.Format(time.RFC3339))
	}
	merged := iv
	if other.Start.Before(merged.Start) {
		merged.Start = other.Start
	}
	if other.End.After(merged.End) {
		merged.End = other.End
	}
	return merged, nil
}

// Subtract removes busy from the receiver, returning the remaining pieces in
// chronological order. The result has zero elements when busy covers the
// whole interval, two when busy pierces the middle, and one otherwise. An
// untouched receiver is returned as-is.
func (iv Interval) Subtract(busy Interval) []Interval {
	if iv.IsEmpty() {
		return nil
	}
	if !iv.Overlaps(busy) {
		return []Interval{iv}
	}

	var out []Interval
	if iv.Start.Before(busy.Start) {
		out = append(out, Interval{Start: iv.Start, End: busy.Start})
	}
	if busy.End.Before(iv.End) {
		out = append(out, Interval{Start: busy.End, End: iv.End})
	}
	return out
}

// Intersect returns the overlap of the two intervals and whether one exists.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	section := iv
	if other.Start.After(section.Start) {
		section.Start = other.Start
	}
	if other.End.Before(section.End) {
		section.End = other.End
	}
	return section, true
}

// Clamp restricts the interval to the given bounds. The result may be empty.
func (iv Interval) Clamp(bounds Interval) Interval {
	clamped := iv
	if bounds.Start.After(clamped.Start) {
		clamped.Start = bounds.Start
	}
	if bounds.End.Before(clamped.End) {
		clamped.End = bounds.End
	}
	if clamped.Start.After(clamped.End) {
		return Interval{Start: clamped.Start, End: clamped.Start}
	}
	return clamped
}

// In re-expresses both endpoints in loc. The underlying instants are
// unchanged; only the wall-clock representation moves, so an interval that
// crosses a daylight-saving transition keeps its absolute duration.
func (iv Interval) In(loc *time.Location) Interval {
	return Interval{Start: iv.Start.In(loc), End: iv.End.In(loc)}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
}
