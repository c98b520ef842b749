package domain

import (
	"fmt"
	"time"
)

// RelativeLabel renders a human-readable age for a notification timestamp.
// Buckets: under a minute is "now", under an hour counts minutes, under a
// day counts hours, under a week counts days, older falls back to the
// calendar date. Deterministic given both instants.
func RelativeLabel(createdAt, now time.Time) string {
	d := now.Sub(createdAt)

	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	default:
		return createdAt.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
