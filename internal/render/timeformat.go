package render

import "strings"

// Zones whose locales customarily use a 12-hour clock, beyond the America/
// prefix rule.
var twelveHourZones = map[string]struct{}{
	"Europe/London":       {},
	"Europe/Dublin":       {},
	"Pacific/Auckland":    {},
	"Pacific/Chatham":     {},
	"Australia/Sydney":    {},
	"Australia/Melbourne": {},
	"Australia/Brisbane":  {},
	"Australia/Perth":     {},
	"Australia/Adelaide":  {},
	"Australia/Darwin":    {},
	"Asia/Manila":         {},
}

// Uses24Hour guesses whether an IANA zone's locale reads a 24-hour clock.
// Most America/ zones, the UK and Ireland, Australia and New Zealand, and the
// Philippines use 12-hour time; everywhere else defaults to 24-hour. The
// guess is overridable via the caller's time-format preference.
func Uses24Hour(tzName string) bool {
	if _, ok := twelveHourZones[tzName]; ok {
		return false
	}
	if strings.HasPrefix(tzName, "America/") {
		return false
	}
	return true
}

// ResolveTimeFormat maps a user preference (auto, 12/12h or 24/24h) and the
// attendee zone onto a concrete clock choice.
func ResolveTimeFormat(pref, tzName string) bool {
	switch pref {
	case "12", "12h":
		return false
	case "24", "24h":
		return true
	default:
		return Uses24Hour(tzName)
	}
}
