package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/teemow/freeslots/internal/interval"
)

// BusyEvent is a calendar commitment as delivered by the event source. The
// core only looks at the window; the metadata is carried through for logging.
// All-day events must already be expanded into full-day windows in the
// owner's home timezone before they reach this package.
type BusyEvent struct {
	Window  interval.Interval
	Summary string
	AllDay  bool
}

// BusySet is an ordered sequence of disjoint intervals, non-decreasing by
// start, with no two entries overlapping or adjacent.
type BusySet []interval.Interval

// Normalize pads every event window with buffer on both sides and merges the
// results into a minimal disjoint BusySet. Normalizing an already-disjoint,
// already-sorted set with zero buffer returns it unchanged. An event whose
// window has start after end fails with interval.ErrInvalidInterval.
func Normalize(events []BusyEvent, buffer time.Duration) (BusySet, error) {
	if len(events) == 0 {
		return nil, nil
	}

	expanded := make([]interval.Interval, 0, len(events))
	for _, ev := range events {
		// Validate the raw window before padding; padding can mask an
		// inversion smaller than twice the buffer.
		window, err := interval.New(ev.Window.Start, ev.Window.End)
		if err != nil {
			return nil, fmt.Errorf("busy event %q: %w", ev.Summary, err)
		}
		expanded = append(expanded, interval.Interval{
			Start: window.Start.Add(-buffer),
			End:   window.End.Add(buffer),
		})
	}

	sort.Slice(expanded, func(i, j int) bool {
		return expanded[i].Start.Before(expanded[j].Start)
	})

	merged := BusySet{expanded[0]}
	for _, cur := range expanded[1:] {
		last := &merged[len(merged)-1]
		if cur.Overlaps(*last) || cur.Adjacent(*last) {
			union, err := last.Merge(cur)
			if err != nil {
				return nil, err
			}
			*last = union
		} else {
			merged = append(merged, cur)
		}
	}

	return merged, nil
}

// Overlapping returns the subset of the busy set that overlaps window,
// preserving order. The set is disjoint and sorted, so the result is too.
func (s BusySet) Overlapping(window interval.Interval) BusySet {
	var out BusySet
	for _, busy := range s {
		if busy.Overlaps(window) {
			out = append(out, busy)
		}
	}
	return out
}
