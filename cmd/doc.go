// Package cmd implements the command-line interface for freeslots.
//
// This package provides the following commands:
//   - find: Compute open meeting windows from Google Calendar
//   - auth: Authorize read-only Google Calendar access
//   - calendars: List the calendars an account can read
//   - serve: Start the MCP server to provide availability tools for AI assistants
//   - version: Display version information
//
// The find command is the default command when no subcommand is specified.
package cmd
