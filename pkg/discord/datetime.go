package discord

import (
	"time"

	"eventsite/pkg/tz"
)

// FormatEventDateTime renders t in the event's timezone, e.g.
// "15/02/2026 14:00 CET". Zero times render as "".
func FormatEventDateTime(t time.Time, zone string) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Load(zone)).Format("02/01/2006 15:04 MST")
}
