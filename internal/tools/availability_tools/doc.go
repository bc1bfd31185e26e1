// Package availability_tools provides MCP (Model Context Protocol) tools for
// computing meeting availability from Google Calendar.
//
// The tools expose the availability engine to AI assistants: finding open
// meeting windows under the working-hours policy, querying raw free/busy
// data, and listing the calendars an account can read. Multi-account
// authentication follows the same account-name convention as the CLI.
package availability_tools
