package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation    = "operation"
	KeyCalendar     = "calendar"
	KeyAccount      = "account"
	KeyAttendeeZone = "attendee_tz"
	KeyDays         = "days"
	KeySlotMinutes  = "slot_minutes"
	KeyWindows      = "windows"
	KeyDuration     = "duration"
	KeyStatus       = "status"
	KeyError        = "error"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NewLogger returns a text logger on stderr at the given level. Writing to
// stderr keeps structured logs out of the rendered availability on stdout and
// away from the MCP stdio transport.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithAccount returns a logger with the account attribute set.
func WithAccount(logger *slog.Logger, account string) *slog.Logger {
	return logger.With(slog.String(KeyAccount, account))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// AttendeeZone returns a slog attribute for the attendee's IANA zone name.
func AttendeeZone(name string) slog.Attr {
	return slog.String(KeyAttendeeZone, name)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error. If err is nil it returns an
// empty Group attribute that slog omits from output, so Err(maybeNilErr) is
// always safe to pass.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizeCalendarID returns a hashed representation of a calendar
// identifier for logging. Calendar IDs are usually email addresses; hashing
// lets log entries correlate without exposing them.
func AnonymizeCalendarID(id string) string {
	if id == "" || id == "primary" {
		return id
	}
	hash := sha256.Sum256([]byte(id))
	return "cal:" + hex.EncodeToString(hash[:8])
}

// Calendar returns a slog attribute with the anonymized calendar identifier.
func Calendar(id string) slog.Attr {
	return slog.String(KeyCalendar, AnonymizeCalendarID(id))
}
