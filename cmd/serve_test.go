package cmd

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/freeslots/internal/server"
)

func TestRegisterAllTools(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("freeslots-test", "0.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	sc, err := server.NewServerContext(context.Background(), nil)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	require.NoError(t, registerAllTools(mcpSrv, sc))
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"find", "auth", "calendars", "serve", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestFindCommandRejectsBadNow(t *testing.T) {
	cmd := newFindCmd()
	cmd.SetArgs([]string{"--now", "tomorrow-ish", "--attendee-tz", "UTC"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC3339")
}

func TestFindCommandRejectsBadHomeTZ(t *testing.T) {
	cmd := newFindCmd()
	cmd.SetArgs([]string{"--home-tz", "Mars/Olympus_Mons"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown timezone")
}

func TestFindCommandDefaultsHomeTZToDenver(t *testing.T) {
	cmd := newFindCmd()

	flag := cmd.Flags().Lookup("home-tz")
	require.NotNil(t, flag)
	assert.Equal(t, "America/Denver", flag.DefValue)
}
