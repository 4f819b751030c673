// Package calendar provides civil-date parsing and arithmetic.
// A civil date is a plain calendar day without time-of-day or zone offset.
// All arithmetic is done on a UTC-midnight anchor so that day counts are
// never perturbed by daylight-saving transitions of any wall-clock zone.
package calendar

import (
	"time"

	"github.com/pkg/errors"
)

// KeyLayout is the canonical serialization of a civil date.
const KeyLayout = "2006-01-02"

// ErrFormat is returned when a date key is not a calendar-valid
// "YYYY-MM-DD" string (e.g. month 13 or Feb 30).
var ErrFormat = errors.New("invalid date key format")

// nowFunc is replaced in tests.
var nowFunc = time.Now

// Date is an immutable civil date. Equality and ordering are by
// calendar value.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse accepts exactly a calendar-valid "YYYY-MM-DD" key.
// Any other input fails with ErrFormat as the cause.
func Parse(text string) (Date, error) {
	t, err := time.ParseInLocation(KeyLayout, text, time.UTC)
	if err != nil {
		return Date{}, errors.Wrapf(ErrFormat, "%q", text)
	}
	return dateOf(t), nil
}

// Today returns the current date as observed in the named zone,
// independent of the host's configured timezone.
func Today(zoneName string) (Date, error) {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return Date{}, errors.Wrapf(err, "failed to load timezone %q", zoneName)
	}
	return dateOf(nowFunc().In(loc)), nil
}

// Key returns the canonical "YYYY-MM-DD" serialization, the inverse of Parse.
func (d Date) Key() string {
	return d.anchor().Format(KeyLayout)
}

// AddDays returns the date n whole days after d (before, when n is negative).
func (d Date) AddDays(n int) Date {
	return dateOf(d.anchor().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.anchor().Before(other.anchor())
}

func (d Date) After(other Date) bool {
	return d.anchor().After(other.anchor())
}

// anchor maps the date to midnight UTC, the representation used for
// all arithmetic in this package.
func (d Date) anchor() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}
