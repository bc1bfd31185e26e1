// Package google_tools provides MCP tools for the Google OAuth authorization
// flow: fetching the consent URL and exchanging the authorization code for a
// per-account token on disk.
package google_tools
