// Package render turns computed availability into user-facing text or JSON.
// It is the only place formatting decisions live; the engine hands it
// timezone-aware instants and nothing else.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teemow/freeslots/internal/interval"
)

// Result is one availability computation plus the presentation parameters
// the renderers need.
type Result struct {
	CalendarID  string
	AttendeeTZ  string
	WindowStart time.Time
	WindowEnd   time.Time
	SlotMinutes int
	Use24Hour   bool
	Free        []interval.Interval
}

// NoAvailabilityMessage is printed when nothing of qualifying length is open.
const NoAvailabilityMessage = "No qualifying availability (>=45 minutes) in the requested window."

// Text renders the availability grouped per attendee-local date:
//
//	Availability (America/New_York):
//	Wednesday March 5th: 11:30am-1:45pm; 2:45-7:00pm
func Text(res Result) string {
	if len(res.Free) == 0 {
		return NoAvailabilityMessage
	}

	type dayKey struct {
		year  int
		month time.Month
		day   int
	}
	byDate := make(map[dayKey][]interval.Interval)
	var order []dayKey
	for _, iv := range res.Free {
		key := dayKey{iv.Start.Year(), iv.Start.Month(), iv.Start.Day()}
		if _, seen := byDate[key]; !seen {
			order = append(order, key)
		}
		byDate[key] = append(byDate[key], iv)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.year != b.year {
			return a.year < b.year
		}
		if a.month != b.month {
			return a.month < b.month
		}
		return a.day < b.day
	})

	lines := []string{fmt.Sprintf("Availability (%s):", res.AttendeeTZ)}
	for _, key := range order {
		ivs := byDate[key]
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start.Before(ivs[j].Start) })

		ranges := make([]string, 0, len(ivs))
		for _, iv := range ivs {
			ranges = append(ranges, TimeRange(iv, res.Use24Hour))
		}

		first := ivs[0].Start
		lines = append(lines, fmt.Sprintf("%s %s %s: %s",
			first.Weekday(), first.Month(), ordinal(first.Day()), strings.Join(ranges, "; ")))
	}

	return strings.Join(lines, "\n")
}

// TimeRange formats one interval's start and end on the chosen clock. On the
// 12-hour clock the meridiem is only repeated when start and end differ:
// 9:30-11:45am but 11:30am-1:00pm.
func TimeRange(iv interval.Interval, use24h bool) string {
	if use24h {
		return iv.Start.Format("15:04") + "-" + iv.End.Format("15:04")
	}

	startMeridiem := strings.ToLower(iv.Start.Format("PM"))
	endMeridiem := strings.ToLower(iv.End.Format("PM"))
	if startMeridiem == endMeridiem {
		return fmt.Sprintf("%s-%s%s", iv.Start.Format("3:04"), iv.End.Format("3:04"), endMeridiem)
	}
	return fmt.Sprintf("%s%s-%s%s", iv.Start.Format("3:04"), startMeridiem, iv.End.Format("3:04"), endMeridiem)
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 10 || n%100 > 20 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

type jsonInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type jsonResult struct {
	CalendarID  string         `json:"calendar_id"`
	AttendeeTZ  string         `json:"attendee_tz"`
	WindowStart string         `json:"window_start"`
	WindowEnd   string         `json:"window_end"`
	SlotMinutes int            `json:"slot_minutes"`
	TimeFormat  string         `json:"time_format"`
	Free        []jsonInterval `json:"free"`
}

// JSON renders the availability as an indented JSON document with RFC3339
// timestamps carrying the attendee-local offsets.
func JSON(res Result) (string, error) {
	doc := jsonResult{
		CalendarID:  res.CalendarID,
		AttendeeTZ:  res.AttendeeTZ,
		WindowStart: res.WindowStart.Format(time.RFC3339),
		WindowEnd:   res.WindowEnd.Format(time.RFC3339),
		SlotMinutes: res.SlotMinutes,
		TimeFormat:  "12",
		Free:        []jsonInterval{},
	}
	if res.Use24Hour {
		doc.TimeFormat = "24"
	}
	for _, iv := range res.Free {
		doc.Free = append(doc.Free, jsonInterval{
			Start: iv.Start.Format(time.RFC3339),
			End:   iv.End.Format(time.RFC3339),
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal availability: %w", err)
	}
	return string(out), nil
}
