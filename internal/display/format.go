// Package display renders the sorted forest as text. The three layouts
// (one-line/long, grid, tree) consume the forest read-only; fetching and
// sorting have already happened by the time anything here runs.
package display

import (
	"fmt"
	"time"

	"github.com/harrison/lsgo/internal/config"
)

// sizeText formats a byte count according to the configured style.
func sizeText(size int64, style config.SizeStyle) string {
	switch style {
	case config.SizeBytes:
		return fmt.Sprintf("%d", size)
	case config.SizeShort:
		value, unit := scaleSize(size)
		if unit == "" {
			return fmt.Sprintf("%d", size)
		}
		return fmt.Sprintf("%.0f%s", value, unit[:1])
	default:
		value, unit := scaleSize(size)
		if unit == "" {
			return fmt.Sprintf("%d B", size)
		}
		return fmt.Sprintf("%.1f %sB", value, unit)
	}
}

// scaleSize reduces size to a value below 1024 plus its unit prefix. The
// empty unit means the size is a plain byte count.
func scaleSize(size int64) (float64, string) {
	value := float64(size)
	for _, unit := range []string{"K", "M", "G", "T", "P"} {
		if value < 1024 {
			break
		}
		value /= 1024
		if value < 1024 {
			return value, unit
		}
	}
	return float64(size), ""
}

// dateText formats a modification time according to the configured style.
func dateText(t time.Time, style config.DateStyle, now time.Time) string {
	if style == config.DateRelative {
		return relativeTime(now.Sub(t))
	}
	if t.Year() == now.Year() {
		return t.Format("Jan _2 15:04")
	}
	return t.Format("Jan _2  2006")
}

func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n <= 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
