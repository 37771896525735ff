package domain

import (
	"strconv"
	"time"
)

// DefaultDateLayout is used for timestamps a week old or more.
const DefaultDateLayout = "2006-01-02"

const day = 24 * time.Hour

// DaysBetween returns the number of whole 24h periods between t and now,
// regardless of which one is earlier. Calendar boundaries are ignored.
func DaysBetween(t, now time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		d = -d
	}
	return int(d / day)
}

// TimeLabel converts a timestamp into a coarse relative label:
// "Today", "Yesterday", "N days ago", or the absolute date after a week.
func TimeLabel(t, now time.Time, dateLayout string) string {
	switch days := DaysBetween(t, now); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return strconv.Itoa(days) + " days ago"
	default:
		if dateLayout == "" {
			dateLayout = DefaultDateLayout
		}
		return t.Local().Format(dateLayout)
	}
}
