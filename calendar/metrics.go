package calendar

// WeekdayIndex returns the weekday of d as 0 (Sunday) through 6 (Saturday).
func WeekdayIndex(d Date) int {
	return int(d.anchor().Weekday())
}

// IsWeekend reports whether a weekday index is Saturday or Sunday.
func IsWeekend(weekdayIndex int) bool {
	return weekdayIndex == 0 || weekdayIndex == 6
}

// MondayAnchor returns the Monday of the week containing d.
func MondayAnchor(d Date) Date {
	// days elapsed since the last Monday (Sunday counts as 6)
	shift := (WeekdayIndex(d) + 6) % 7
	return d.AddDays(-shift)
}

// WeekPosition locates a date's Monday-aligned week within a period.
// Index is 1-based.
type WeekPosition struct {
	Index          int `json:"index"`
	WeeksRemaining int `json:"weeks_remaining"`
}

// WeekPositionIn computes the Monday-aligned week index of d within p,
// and the number of whole weeks remaining until the week of p.End.
func WeekPositionIn(d Date, p Period) WeekPosition {
	firstMonday := MondayAnchor(p.Start)
	lastMonday := MondayAnchor(p.End)
	thisMonday := MondayAnchor(d)

	index := DiffDays(firstMonday, thisMonday)/7 + 1
	total := DiffDays(firstMonday, lastMonday)/7 + 1

	remaining := total - index
	if remaining < 0 {
		remaining = 0
	}
	return WeekPosition{Index: index, WeeksRemaining: remaining}
}
