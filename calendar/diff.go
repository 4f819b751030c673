package calendar

import (
	"fmt"
	"strings"
)

const secondsPerDay = 24 * 60 * 60

// DiffDays returns the signed whole-day count from one civil date to
// another. Both dates are anchored to UTC midnight, so the result is a
// pure calendar-value difference with no daylight-saving artifacts.
// The subtraction is done on unix seconds rather than time.Time.Sub,
// whose time.Duration result saturates for ranges beyond ~292 years.
func DiffDays(from, to Date) int {
	return int((to.anchor().Unix() - from.anchor().Unix()) / secondsPerDay)
}

// DiffLabel renders a day difference as a directional phrase, e.g.
// "1 week 2 days later, +9 days". A zero difference renders as
// "today, 0 days".
func DiffLabel(diffDays int) string {
	if diffDays == 0 {
		return "today, 0 days"
	}

	abs, direction, sign := diffDays, "later", "+"
	if diffDays < 0 {
		abs, direction, sign = -diffDays, "earlier", "-"
	}

	weeks, days := abs/7, abs%7
	var parts []string
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", weeks, plural(weeks, "week")))
	}
	if days > 0 || weeks == 0 {
		parts = append(parts, fmt.Sprintf("%d %s", days, plural(days, "day")))
	}

	return fmt.Sprintf("%s %s, %s%d days", strings.Join(parts, " "), direction, sign, abs)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
