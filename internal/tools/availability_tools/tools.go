package availability_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/freeslots/internal/calendar"
	"github.com/teemow/freeslots/internal/google"
	"github.com/teemow/freeslots/internal/server"
	"github.com/teemow/freeslots/internal/tools/common"
)

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !calendar.HasTokenForAccount(account) {
			authURL := google.GetAuthURL()
			return nil, fmt.Errorf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant read-only access to Google Calendar
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, authURL, account)
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}

// RegisterAvailabilityTools registers all availability-related tools with the MCP server
func RegisterAvailabilityTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Find availability tool
	findTool := mcp.NewTool("availability_find",
		mcp.WithDescription("Find open meeting windows over the next days, honoring working hours, event buffers and a minimum duration"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendar_id",
			mcp.Description("Calendar to check (default: 'primary')"),
		),
		mcp.WithNumber("days",
			mcp.Description("Look-ahead horizon in days, starting now (default: 7)"),
		),
		mcp.WithString("home_tz",
			mcp.Description("IANA timezone anchoring the working hours (default: 'America/Denver')"),
		),
		mcp.WithString("attendee_tz",
			mcp.Description("IANA timezone for presenting results, e.g. 'Europe/Berlin' (default: from config)"),
		),
		mcp.WithNumber("slot_minutes",
			mcp.Description("Cut availability into fixed slots of this many minutes; omit or 0 for continuous windows"),
		),
		mcp.WithString("output",
			mcp.Description("Output format: 'text' or 'json' (default: 'text')"),
		),
		mcp.WithString("time_format",
			mcp.Description("Clock style: 'auto', '12h' or '24h' (default: 'auto', derived from the attendee timezone)"),
		),
	)

	s.AddTool(findTool, common.InstrumentedToolHandler("availability_find", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFind(ctx, request, sc)
		}))

	// Raw free/busy tool
	freeBusyTool := mcp.NewTool("availability_freebusy",
		mcp.WithDescription("Query raw free/busy data for one or more calendars in a time range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for the range (RFC3339 format, e.g., '2026-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for the range (RFC3339 format, e.g., '2026-01-31T23:59:59Z')"),
		),
		mcp.WithString("calendars",
			mcp.Required(),
			mcp.Description("Comma-separated list of calendar IDs or email addresses to check"),
		),
	)

	s.AddTool(freeBusyTool, common.InstrumentedToolHandler("availability_freebusy", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFreeBusy(ctx, request, sc)
		}))

	// Calendar list tool
	listTool := mcp.NewTool("calendar_list",
		mcp.WithDescription("List all calendars the account has access to"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(listTool, common.InstrumentedToolHandler("calendar_list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListCalendars(ctx, request, sc)
		}))

	return nil
}
