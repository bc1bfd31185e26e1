package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/freeslots/internal/server"
)

func TestRegisterAvailabilityResources(t *testing.T) {
	s := mcpserver.NewMCPServer("freeslots-test", "0.0.0",
		mcpserver.WithResourceCapabilities(false, false),
	)

	sc, err := server.NewServerContext(context.Background(), nil)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	require.NoError(t, RegisterAvailabilityResources(s, sc))
}

func TestHandlePolicy(t *testing.T) {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "availability://policy"

	contents, err := handlePolicy(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(*mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)

	var payload struct {
		WorkingDays []struct {
			Weekday string `json:"weekday"`
			Start   string `json:"start"`
			End     string `json:"end"`
		} `json:"working_days"`
		BufferMinutes  int `json:"buffer_minutes"`
		MinFreeMinutes int `json:"min_free_minutes"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))

	assert.Equal(t, 15, payload.BufferMinutes)
	assert.Equal(t, 45, payload.MinFreeMinutes)
	require.Len(t, payload.WorkingDays, 5)

	byDay := make(map[string][2]string)
	for _, d := range payload.WorkingDays {
		byDay[d.Weekday] = [2]string{d.Start, d.End}
	}
	assert.Equal(t, [2]string{"08:30", "17:00"}, byDay["Monday"])
	assert.Equal(t, [2]string{"09:30", "17:00"}, byDay["Wednesday"])
	assert.NotContains(t, byDay, "Saturday")
	assert.NotContains(t, byDay, "Sunday")
}

func TestHandleDefaults(t *testing.T) {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "availability://defaults"

	contents, err := handleDefaults(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(*mcp.TextResourceContents)
	require.True(t, ok)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	assert.Contains(t, payload, "calendar_id")
	assert.Contains(t, payload, "home_tz")
	assert.Contains(t, payload, "attendee_tz")
	assert.Contains(t, payload, "days")
}
