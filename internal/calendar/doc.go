// Package calendar is the busy-event source for the availability engine,
// backed by the Google Calendar API.
//
// The client fetches the owner's commitments for a bounded time range,
// expands all-day entries into full-day windows in the owner's home timezone,
// and hands the result to the schedule package as a plain event list. All
// network concerns (pagination, timeouts via context) live here; the engine
// itself performs no I/O.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	busy, err := client.BusyEvents(ctx, "primary", timeMin, timeMax, home)
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
