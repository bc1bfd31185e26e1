package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/freeslots/internal/instrumentation"
	"github.com/teemow/freeslots/internal/resources"
	"github.com/teemow/freeslots/internal/server"
	"github.com/teemow/freeslots/internal/tools/availability_tools"
	"github.com/teemow/freeslots/internal/tools/google_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to provide availability
tools for AI assistants over standard input/output.

All tools are read-only: the server reads Google Calendar and computes
availability, it never modifies events.

Metrics:
  A dedicated Prometheus listener can run alongside the stdio transport.
  Enable it with --metrics (or METRICS_ENABLED=true) and point Prometheus
  at the /metrics endpoint. The listener never shares the stdio transport.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			})
		},
	}

	cmd.Flags().BoolVar(&metricsEnabled, "metrics", false, "Start the Prometheus metrics listener")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Address for the metrics listener")

	return cmd
}

func runServe(metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		// The stdio transport owns stdout, so shutdown noise goes nowhere.
		_ = provider.Shutdown(shutdownCtx)
	}()

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() && provider.PrometheusConfigured() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Create server context with lazily initialized calendar clients
	serverContext, err := server.NewServerContext(shutdownCtx, provider.Metrics())
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}
		_ = serverContext.Shutdown()
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("freeslots", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
	)

	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	return runStdioServer(mcpSrv)
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAllTools registers all MCP tools
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Availability",
			register: func() error {
				return availability_tools.RegisterAvailabilityTools(mcpSrv, ctx)
			},
		},
		{
			name: "Google OAuth",
			register: func() error {
				return google_tools.RegisterGoogleTools(mcpSrv, ctx)
			},
		},
		{
			name: "Availability Resources",
			register: func() error {
				return resources.RegisterAvailabilityResources(mcpSrv, ctx)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}
