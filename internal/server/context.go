package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/teemow/freeslots/internal/calendar"
	"github.com/teemow/freeslots/internal/instrumentation"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx             context.Context
	cancel          context.CancelFunc
	calendarClients map[string]*calendar.Client // Maps account name to Calendar client
	metrics         *instrumentation.Metrics
	mu              sync.RWMutex
	shutdown        bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context, metrics *instrumentation.Metrics) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}

	// Clients are lazily initialized when first needed, so a missing token
	// does not prevent the server from starting.
	clients := make(map[string]*calendar.Client)
	if calendar.HasTokenForAccount("default") {
		client, err := calendar.NewClient(shutdownCtx)
		if err != nil {
			slog.Warn("failed to create Calendar client for default account", "error", err)
		} else {
			clients["default"] = client
		}
	}

	return &ServerContext{
		ctx:             shutdownCtx,
		cancel:          cancel,
		calendarClients: clients,
		metrics:         metrics,
		shutdown:        false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Metrics returns the metrics recorder. Never nil.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// CalendarClientForAccount returns the Calendar client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) CalendarClientForAccount(account string) *calendar.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.calendarClients[account]; ok {
		return client
	}

	if !calendar.HasTokenForAccount(account) {
		return nil
	}

	client, err := calendar.NewClientForAccount(sc.ctx, account)
	if err != nil {
		slog.Warn("failed to create Calendar client", "account", account, "error", err)
		return nil
	}

	sc.calendarClients[account] = client
	return client
}

// CalendarClient returns the Calendar client for the default account
func (sc *ServerContext) CalendarClient() *calendar.Client {
	return sc.CalendarClientForAccount("default")
}

// SetCalendarClientForAccount sets the Calendar client for a specific account
func (sc *ServerContext) SetCalendarClientForAccount(account string, client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClients[account] = client
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
