package calendar

import "time"

// Period is an inclusive range of civil dates.
type Period struct {
	Start Date
	End   Date
}

// CalendarYear returns the Jan 1 - Dec 31 period containing d.
func CalendarYear(d Date) Period {
	return Period{
		Start: Date{Year: d.Year, Month: time.January, Day: 1},
		End:   Date{Year: d.Year, Month: time.December, Day: 31},
	}
}

// FiscalYear returns the Apr 1 - Mar 31 period containing d.
// A date before Apr 1 belongs to the fiscal year that started on
// the previous Apr 1.
func FiscalYear(d Date) Period {
	startYear := d.Year
	if d.Before(Date{Year: d.Year, Month: time.April, Day: 1}) {
		startYear--
	}
	return Period{
		Start: Date{Year: startYear, Month: time.April, Day: 1},
		End:   Date{Year: startYear + 1, Month: time.March, Day: 31},
	}
}

// Contains reports whether d falls within the period.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}
