package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teemow/freeslots/internal/google"
	"github.com/teemow/freeslots/internal/interval"
	"github.com/teemow/freeslots/internal/schedule"
)

// Client wraps the Google Calendar service
type Client struct {
	svc           *calendar.Service
	account       string
	tokenProvider google.TokenProvider
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.NewFileTokenProvider().HasTokenForAccount(account)
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2
// authentication for a specific account. The OAuth token is retrieved from
// the provided token provider.
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	conf := google.GetOAuthConfig()
	tokenSource := conf.TokenSource(ctx, token)

	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client for a specific account
// using the default file-based token provider.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	return NewClientForAccountWithProvider(ctx, account, google.NewFileTokenProvider())
}

// NewClient creates a new Calendar client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// BusyEvents fetches the owner's commitments between timeMin and timeMax and
// converts them into busy events for the availability engine. Recurring
// events arrive pre-expanded (SingleEvents), all-day entries become full-day
// windows in home, and entries without usable times are skipped. Results are
// fetched page by page until the listing is exhausted.
func (c *Client) BusyEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time, home *time.Location) ([]schedule.BusyEvent, error) {
	var busy []schedule.BusyEvent

	pageToken := ""
	for {
		call := c.svc.Events.List(calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}

		for _, item := range resp.Items {
			if ev, ok := toBusyEvent(item, home); ok {
				busy = append(busy, ev)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return busy, nil
}

// ListCalendars lists all calendars accessible to the user
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	list, err := c.svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	var calendars []CalendarInfo
	for _, entry := range list.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}

	return calendars, nil
}

// GetCalendar retrieves information about a specific calendar
func (c *Client) GetCalendar(ctx context.Context, calendarID string) (*CalendarInfo, error) {
	entry, err := c.svc.CalendarList.Get(calendarID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	info := toCalendarInfo(entry)
	return &info, nil
}

// GetPrimaryCalendar retrieves information about the primary calendar
func (c *Client) GetPrimaryCalendar(ctx context.Context) (*CalendarInfo, error) {
	return c.GetCalendar(ctx, "primary")
}

// QueryFreeBusy checks availability for calendars in a time range using the
// freebusy endpoint. The find command uses the event listing instead because
// freebusy flattens all-day metadata, but the MCP freebusy tool exposes this
// directly.
func (c *Client) QueryFreeBusy(ctx context.Context, timeMin, timeMax time.Time, calendarIDs []string) ([]FreeBusyInfo, error) {
	items := make([]*calendar.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &calendar.FreeBusyRequestItem{Id: id}
	}

	query := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}

	result, err := c.svc.Freebusy.Query(query).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}

	var infos []FreeBusyInfo
	for calID, cal := range result.Calendars {
		info := FreeBusyInfo{
			Calendar: calID,
		}

		for _, busy := range cal.Busy {
			start, err := time.Parse(time.RFC3339, busy.Start)
			if err != nil {
				continue
			}
			end, err := time.Parse(time.RFC3339, busy.End)
			if err != nil {
				continue
			}
			info.Busy = append(info.Busy, interval.Interval{Start: start, End: end})
		}

		for _, err := range cal.Errors {
			info.Errors = append(info.Errors, err.Reason)
		}

		infos = append(infos, info)
	}

	return infos, nil
}
