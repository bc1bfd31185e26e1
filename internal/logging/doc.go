// Package logging provides slog attribute helpers for consistent structured
// logging across the application, including anonymization of calendar
// identifiers, which are usually email addresses.
package logging
