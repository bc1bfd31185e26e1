package availability_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/freeslots/internal/config"
	"github.com/teemow/freeslots/internal/instrumentation"
	"github.com/teemow/freeslots/internal/render"
	"github.com/teemow/freeslots/internal/schedule"
	"github.com/teemow/freeslots/internal/server"
	"github.com/teemow/freeslots/internal/tools/common"
)

func handleFind(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	// Persisted CLI configuration supplies the defaults so the server and
	// the command line agree on behavior.
	cfg := config.Load(config.DefaultDir())

	calendarID := cfg.CalendarID
	if v, ok := args["calendar_id"].(string); ok && v != "" {
		calendarID = v
	}

	days := cfg.Days
	if v, ok := args["days"].(float64); ok && v != 0 {
		days = int(v)
	}

	homeTZ := cfg.HomeTZ
	if v, ok := args["home_tz"].(string); ok && v != "" {
		homeTZ = v
	}

	attendeeTZ := cfg.AttendeeTZ
	if v, ok := args["attendee_tz"].(string); ok && v != "" {
		attendeeTZ = v
	}

	slotMinutes := cfg.SlotMinutes
	if v, ok := args["slot_minutes"].(float64); ok {
		slotMinutes = int(v)
	}

	output := cfg.Output
	if v, ok := args["output"].(string); ok && v != "" {
		output = v
	}
	if output != "text" && output != "json" {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid output format %q, must be 'text' or 'json'", output)), nil
	}

	timeFormat := cfg.TimeFormat
	if v, ok := args["time_format"].(string); ok && v != "" {
		timeFormat = v
	}

	home, err := time.LoadLocation(homeTZ)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown timezone %q: %v", homeTZ, err)), nil
	}

	attendee, err := time.LoadLocation(attendeeTZ)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown timezone %q: %v", attendeeTZ, err)), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	engine := schedule.NewEngine(home)
	now := time.Now()
	horizonEnd := now.Add(time.Duration(days) * 24 * time.Hour)

	fetchStart := time.Now()
	busy, err := client.BusyEvents(ctx, calendarID, now, horizonEnd, engine.Home)
	sc.Metrics().RecordCalendarOperation(ctx, "events.list", instrumentation.StatusOf(err), time.Since(fetchStart))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch calendar events: %v", err)), nil
	}

	mode := instrumentation.ModeContinuous
	if slotMinutes > 0 {
		mode = instrumentation.ModeSlots
	}

	computeStart := time.Now()
	free, err := engine.Compute(schedule.Request{
		Now:         now,
		Days:        days,
		Attendee:    attendee,
		SlotMinutes: slotMinutes,
		Busy:        busy,
	})
	sc.Metrics().RecordComputation(ctx, mode, instrumentation.StatusOf(err), len(free), time.Since(computeStart))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compute availability: %v", err)), nil
	}

	res := render.Result{
		CalendarID:  calendarID,
		AttendeeTZ:  attendeeTZ,
		WindowStart: now.In(attendee),
		WindowEnd:   horizonEnd.In(attendee),
		SlotMinutes: slotMinutes,
		Use24Hour:   render.ResolveTimeFormat(timeFormat, attendeeTZ),
		Free:        free,
	}

	if output == "json" {
		out, err := render.JSON(res)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to render result: %v", err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}

	return mcp.NewToolResultText(render.Text(res)), nil
}

func handleFreeBusy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	timeMinStr, ok := args["timeMin"].(string)
	if !ok || timeMinStr == "" {
		return mcp.NewToolResultError("timeMin is required"), nil
	}
	timeMin, err := time.Parse(time.RFC3339, timeMinStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMin format: %v", err)), nil
	}

	timeMaxStr, ok := args["timeMax"].(string)
	if !ok || timeMaxStr == "" {
		return mcp.NewToolResultError("timeMax is required"), nil
	}
	timeMax, err := time.Parse(time.RFC3339, timeMaxStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMax format: %v", err)), nil
	}

	calendarsStr, ok := args["calendars"].(string)
	if !ok || calendarsStr == "" {
		return mcp.NewToolResultError("calendars is required"), nil
	}
	calendars := strings.Split(calendarsStr, ",")
	for i := range calendars {
		calendars[i] = strings.TrimSpace(calendars[i])
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	queryStart := time.Now()
	freeBusyInfos, err := client.QueryFreeBusy(ctx, timeMin, timeMax, calendars)
	sc.Metrics().RecordCalendarOperation(ctx, "freebusy.query", instrumentation.StatusOf(err), time.Since(queryStart))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query free/busy: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Free/Busy information for %d calendar(s):\n\n", len(freeBusyInfos))
	for _, info := range freeBusyInfos {
		fmt.Fprintf(&b, "Calendar: %s\n", info.Calendar)

		if len(info.Errors) > 0 {
			fmt.Fprintf(&b, "  Errors: %s\n", strings.Join(info.Errors, ", "))
		}

		if len(info.Busy) == 0 {
			b.WriteString("  Status: FREE for entire range\n")
		} else {
			fmt.Fprintf(&b, "  Busy periods: %d\n", len(info.Busy))
			for i, busy := range info.Busy {
				fmt.Fprintf(&b, "  %d. %s to %s\n",
					i+1,
					busy.Start.Format("2006-01-02 15:04"),
					busy.End.Format("2006-01-02 15:04"))
			}
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleListCalendars(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	listStart := time.Now()
	calendars, err := client.ListCalendars(ctx)
	sc.Metrics().RecordCalendarOperation(ctx, "calendarList.list", instrumentation.StatusOf(err), time.Since(listStart))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list calendars: %v", err)), nil
	}

	if len(calendars) == 0 {
		return mcp.NewToolResultText("No calendars found."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d calendar(s):\n\n", len(calendars))
	for i, cal := range calendars {
		fmt.Fprintf(&b, "%d. %s\n", i+1, cal.Summary)
		fmt.Fprintf(&b, "   ID: %s\n", cal.ID)
		if cal.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", cal.Description)
		}
		if cal.TimeZone != "" {
			fmt.Fprintf(&b, "   Timezone: %s\n", cal.TimeZone)
		}
		if cal.Primary {
			b.WriteString("   Primary: yes\n")
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}
