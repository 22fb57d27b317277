package date

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Date is a calendar date in the proleptic Gregorian calendar. Values are
// only produced by MakeDate, DateOf and the arithmetic below, so every Date
// other than the zero value is valid.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// MakeDate returns the date for the given triple, or an error wrapping
// ErrInvalidCalendarDate if the triple does not name a real day.
func MakeDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidCalendarDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d has no day %d", ErrInvalidCalendarDate, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// mustDate is MakeDate for triples computed from an already valid date.
func mustDate(year int, month time.Month, day int) Date {
	d, err := MakeDate(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("date: internal invariant violated: %v", err))
	}
	return d
}

// DaysInMonth returns the number of days in month for year. month must be
// in the range January..December.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// Time returns midnight at the start of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d (before d when n is negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Sub returns the number of whole days from other to d.
func (d Date) Sub(other Date) int {
	const secondsPerDay = 24 * 60 * 60
	return int((d.Time(time.UTC).Unix() - other.Time(time.UTC).Unix()) / secondsPerDay)
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Date) Before(other Date) bool {
	return d.compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.compare(other) > 0
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return d.Year - other.Year
	case d.Month != other.Month:
		return int(d.Month) - int(other.Month)
	default:
		return d.Day - other.Day
	}
}

// String formats d as canonical YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Format formats d using a Go time layout.
func (d Date) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
