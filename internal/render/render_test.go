package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/freeslots/internal/interval"
)

func window(t *testing.T, day, start, end string) interval.Interval {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	s, err := time.ParseInLocation("2006-01-02 15:04", day+" "+start, loc)
	require.NoError(t, err)
	e, err := time.ParseInLocation("2006-01-02 15:04", day+" "+end, loc)
	require.NoError(t, err)
	return interval.Interval{Start: s, End: e}
}

func TestUses24Hour(t *testing.T) {
	tests := []struct {
		zone string
		want bool
	}{
		{"America/New_York", false},
		{"America/Denver", false},
		{"Europe/London", false},
		{"Australia/Sydney", false},
		{"Asia/Manila", false},
		{"Europe/Berlin", true},
		{"Asia/Tokyo", true},
		{"UTC", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Uses24Hour(tt.zone), tt.zone)
	}
}

func TestResolveTimeFormat(t *testing.T) {
	assert.False(t, ResolveTimeFormat("12", "Asia/Tokyo"))
	assert.True(t, ResolveTimeFormat("24", "America/New_York"))
	assert.False(t, ResolveTimeFormat("auto", "America/New_York"))
	assert.True(t, ResolveTimeFormat("auto", "Asia/Tokyo"))
}

func TestTimeRange(t *testing.T) {
	morning := window(t, "2025-03-05", "09:30", "11:45")
	crossesNoon := window(t, "2025-03-05", "11:30", "13:00")

	assert.Equal(t, "09:30-11:45", TimeRange(morning, true))
	assert.Equal(t, "9:30-11:45am", TimeRange(morning, false))
	assert.Equal(t, "11:30am-1:00pm", TimeRange(crossesNoon, false))
}

func TestTextGroupsByDate(t *testing.T) {
	res := Result{
		AttendeeTZ: "America/New_York",
		Free: []interval.Interval{
			window(t, "2025-03-05", "11:30", "13:45"),
			window(t, "2025-03-05", "14:45", "19:00"),
			window(t, "2025-03-06", "10:30", "19:00"),
		},
	}

	text := Text(res)
	assert.Equal(t, "Availability (America/New_York):\n"+
		"Wednesday March 5th: 11:30am-1:45pm; 2:45-7:00pm\n"+
		"Thursday March 6th: 10:30am-7:00pm", text)
}

func TestTextEmpty(t *testing.T) {
	text := Text(Result{AttendeeTZ: "America/New_York"})
	assert.Equal(t, NoAvailabilityMessage, text)
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 30: "30th", 31: "31st",
	}
	for n, want := range tests {
		assert.Equal(t, want, ordinal(n))
	}
}

func TestJSON(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	res := Result{
		CalendarID:  "primary",
		AttendeeTZ:  "America/New_York",
		WindowStart: time.Date(2025, 3, 5, 0, 0, 0, 0, loc),
		WindowEnd:   time.Date(2025, 3, 12, 0, 0, 0, 0, loc),
		SlotMinutes: 45,
		Use24Hour:   false,
		Free:        []interval.Interval{window(t, "2025-03-05", "11:30", "12:15")},
	}

	out, err := JSON(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "primary", decoded["calendar_id"])
	assert.Equal(t, "America/New_York", decoded["attendee_tz"])
	assert.Equal(t, "12", decoded["time_format"])
	assert.Equal(t, float64(45), decoded["slot_minutes"])

	free, ok := decoded["free"].([]any)
	require.True(t, ok)
	require.Len(t, free, 1)
	first := free[0].(map[string]any)
	assert.Equal(t, "2025-03-05T11:30:00-05:00", first["start"])
	assert.Equal(t, "2025-03-05T12:15:00-05:00", first["end"])
}

func TestJSONEmptyFreeIsArray(t *testing.T) {
	out, err := JSON(Result{})
	require.NoError(t, err)
	assert.Contains(t, out, `"free": []`)
}
