// Package server provides the MCP server context and the dedicated
// Prometheus metrics listener.
//
// ServerContext manages Google Calendar clients with lazy initialization and
// per-account caching for the STDIO transport; tokens are read from disk via
// the file token provider. MetricsServer serves /metrics on its own port so
// operational metrics never share a listener with application traffic.
package server
