package view

import (
	"fmt"
	"time"
)

// Orders younger than this show a relative phrase, older ones an absolute date.
const relativeWindow = 72 * time.Hour

// TimeAgo renders a creation time for the orders table.
// Under three days it uses minute/hour/day phrasing, after that the date.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "الآن"
	case d < time.Hour:
		return fmt.Sprintf("منذ %d دقيقة", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("منذ %d ساعة", int(d.Hours()))
	case d < relativeWindow:
		return fmt.Sprintf("منذ %d يوم", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// RecencyClass picks the emphasis class for the time column.
// Tiers: new (<1h), recent (<24h), older (<3d), default.
func RecencyClass(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return "text-green-600"
	case d < 24*time.Hour:
		return "text-blue-600"
	case d < relativeWindow:
		return "text-gray-600"
	default:
		return "text-gray-400"
	}
}
