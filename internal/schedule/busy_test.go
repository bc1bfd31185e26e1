package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/freeslots/internal/interval"
)

func busyAt(t *testing.T, start, end string) BusyEvent {
	t.Helper()
	s, err := time.Parse("2006-01-02 15:04", "2025-03-05 "+start)
	require.NoError(t, err)
	e, err := time.Parse("2006-01-02 15:04", "2025-03-05 "+end)
	require.NoError(t, err)
	return BusyEvent{Window: interval.Interval{Start: s, End: e}}
}

func TestNormalizeEmpty(t *testing.T) {
	set, err := Normalize(nil, 15*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestNormalizeBuffersAndMerges(t *testing.T) {
	events := []BusyEvent{
		busyAt(t, "12:00", "12:30"),
		busyAt(t, "13:00", "13:30"),
	}

	// 15 minute padding makes 12:00-12:30 into 11:45-12:45 and
	// 13:00-13:30 into 12:45-13:45; the padded windows touch and merge.
	set, err := Normalize(events, 15*time.Minute)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, "11:45", set[0].Start.Format("15:04"))
	assert.Equal(t, "13:45", set[0].End.Format("15:04"))
}

func TestNormalizeSortsUnorderedInput(t *testing.T) {
	events := []BusyEvent{
		busyAt(t, "15:00", "15:30"),
		busyAt(t, "09:00", "09:30"),
		busyAt(t, "12:00", "12:30"),
	}

	set, err := Normalize(events, 0)
	require.NoError(t, err)
	require.Len(t, set, 3)
	for i := 1; i < len(set); i++ {
		assert.True(t, set[i-1].End.Before(set[i].Start), "set must stay disjoint and sorted")
	}
	assert.Equal(t, "09:00", set[0].Start.Format("15:04"))
}

func TestNormalizeIdempotent(t *testing.T) {
	events := []BusyEvent{
		busyAt(t, "09:00", "10:00"),
		busyAt(t, "12:00", "13:00"),
	}

	once, err := Normalize(events, 0)
	require.NoError(t, err)

	again := make([]BusyEvent, len(once))
	for i, iv := range once {
		again[i] = BusyEvent{Window: iv}
	}
	twice, err := Normalize(again, 0)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeRejectsInvertedEvent(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		buffer time.Duration
	}{
		{
			name:   "inverted by an hour, no buffer",
			start:  time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC),
			end:    time.Date(2025, 3, 5, 11, 0, 0, 0, time.UTC),
			buffer: 0,
		},
		{
			// Padding would turn this 10 minute inversion into a
			// well-formed 20 minute window; it must still fail.
			name:   "inverted by less than twice the buffer",
			start:  time.Date(2025, 3, 5, 12, 10, 0, 0, time.UTC),
			end:    time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC),
			buffer: DefaultBuffer,
		},
		{
			name:   "inverted by one second, large buffer",
			start:  time.Date(2025, 3, 5, 12, 0, 1, 0, time.UTC),
			end:    time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC),
			buffer: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := BusyEvent{
				Window:  interval.Interval{Start: tt.start, End: tt.end},
				Summary: "inverted",
			}

			set, err := Normalize([]BusyEvent{bad}, tt.buffer)
			assert.ErrorIs(t, err, interval.ErrInvalidInterval)
			assert.Nil(t, set)
		})
	}
}

func TestOverlapping(t *testing.T) {
	set, err := Normalize([]BusyEvent{
		busyAt(t, "07:00", "08:00"),
		busyAt(t, "12:00", "13:00"),
		busyAt(t, "18:00", "19:00"),
	}, 0)
	require.NoError(t, err)

	window := busyAt(t, "09:00", "17:00").Window
	hits := set.Overlapping(window)
	require.Len(t, hits, 1)
	assert.Equal(t, "12:00", hits[0].Start.Format("15:04"))
}
