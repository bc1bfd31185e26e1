// Package common provides shared helpers for MCP tool handlers: account
// resolution from request arguments and the instrumentation wrapper that
// records per-tool metrics.
package common
