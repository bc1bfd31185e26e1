// Package resources provides MCP resources for exposing availability
// context. Resources are read-only data sources that MCP clients can fetch:
// the working-hours policy the engine schedules around, and the persisted
// defaults the find operations fall back to.
package resources
