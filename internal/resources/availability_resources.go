package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/freeslots/internal/config"
	"github.com/teemow/freeslots/internal/schedule"
	"github.com/teemow/freeslots/internal/server"
)

// RegisterAvailabilityResources registers the availability context resources
func RegisterAvailabilityResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Working-hours policy resource
	policyResource := mcp.NewResource(
		"availability://policy",
		"Working Hours Policy",
		mcp.WithResourceDescription("The weekly working-hours table, buffer and minimum duration the availability engine schedules around"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(policyResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handlePolicy(ctx, request)
	})

	// Persisted defaults resource
	defaultsResource := mcp.NewResource(
		"availability://defaults",
		"Availability Defaults",
		mcp.WithResourceDescription("The persisted configuration the availability tools fall back to when a parameter is omitted"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(defaultsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleDefaults(ctx, request)
	})

	return nil
}

type policyDay struct {
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

func handlePolicy(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	policy := schedule.DefaultPolicy()

	var days []policyDay
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		window, ok := policy[wd]
		if !ok {
			continue
		}
		days = append(days, policyDay{
			Weekday: wd.String(),
			Start:   fmt.Sprintf("%02d:%02d", window.Start.Hour, window.Start.Minute),
			End:     fmt.Sprintf("%02d:%02d", window.End.Hour, window.End.Minute),
		})
	}

	policyData := map[string]interface{}{
		"working_days":     days,
		"buffer_minutes":   int(schedule.DefaultBuffer.Minutes()),
		"min_free_minutes": int(schedule.DefaultMinFree.Minutes()),
		"description":      "Free windows are computed inside these hours, with every busy event padded by the buffer and fragments below the minimum dropped.",
	}

	jsonData, err := json.MarshalIndent(policyData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

func handleDefaults(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cfg := config.Load(config.DefaultDir())

	defaultsData := map[string]interface{}{
		"calendar_id":  cfg.CalendarID,
		"home_tz":      cfg.HomeTZ,
		"attendee_tz":  cfg.AttendeeTZ,
		"days":         cfg.Days,
		"slot_minutes": cfg.SlotMinutes,
		"output":       cfg.Output,
		"time_format":  cfg.TimeFormat,
	}

	jsonData, err := json.MarshalIndent(defaultsData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal defaults data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
