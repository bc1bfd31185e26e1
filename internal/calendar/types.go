package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/teemow/freeslots/internal/interval"
	"github.com/teemow/freeslots/internal/schedule"
)

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// FreeBusyInfo represents availability information for a calendar
type FreeBusyInfo struct {
	Calendar string
	Busy     []interval.Interval
	Errors   []string
}

// toBusyEvent converts a Google Calendar event into a busy event for the
// engine. The second return value is false for entries the engine cannot
// use: missing times, inverted or zero-length windows.
func toBusyEvent(event *calendar.Event, home *time.Location) (schedule.BusyEvent, bool) {
	if event == nil || event.Start == nil || event.End == nil {
		return schedule.BusyEvent{}, false
	}

	start, allDay, ok := parseEventTime(event.Start, home)
	if !ok {
		return schedule.BusyEvent{}, false
	}
	end, _, ok := parseEventTime(event.End, home)
	if !ok {
		return schedule.BusyEvent{}, false
	}

	start = start.In(home)
	end = end.In(home)
	if !start.Before(end) {
		return schedule.BusyEvent{}, false
	}

	return schedule.BusyEvent{
		Window:  interval.Interval{Start: start, End: end},
		Summary: event.Summary,
		AllDay:  allDay,
	}, true
}

// parseEventTime parses one side of an event. Timed entries carry an RFC3339
// dateTime; all-day entries carry a bare date, which is anchored to midnight
// in the owner's home zone so the event blocks the whole local day. The API
// already makes an all-day end date exclusive.
func parseEventTime(edt *calendar.EventDateTime, home *time.Location) (time.Time, bool, bool) {
	switch {
	case edt.DateTime != "":
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, false, false
		}
		return t, false, true
	case edt.Date != "":
		d, err := time.ParseInLocation("2006-01-02", edt.Date, home)
		if err != nil {
			return time.Time{}, false, false
		}
		return d, true, true
	default:
		return time.Time{}, false, false
	}
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	if entry == nil {
		return CalendarInfo{}
	}
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
