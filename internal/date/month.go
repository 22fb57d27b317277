package date

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// LookupMonth maps an English month name or its three letter abbreviation,
// in any case, to its month. Prefixes other than the abbreviation are not
// accepted.
func LookupMonth(name string) (time.Month, error) {
	if m, ok := monthNames[strings.ToLower(name)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonthName, name)
}

// nextOccurrence returns month/day in today's year if that is on or after
// today, otherwise in the following year.
func nextOccurrence(today Date, month time.Month, day int) (Date, error) {
	if d, err := MakeDate(today.Year, month, day); err == nil && !d.Before(today) {
		return d, nil
	}
	d, err := MakeDate(today.Year+1, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("%w: the specified day does not exist for this month", ErrInvalidCalendarDate)
	}
	return d, nil
}

// nextDayOfMonth finds the next date after today whose day of month is day,
// skipping months too short to contain it. The search gives up once it has
// moved more than two calendar years past today's year.
func nextDayOfMonth(today Date, day int) (Date, error) {
	year, month := today.Year, today.Month
	if today.Day >= day {
		year, month = nextMonth(year, month)
	}
	for year <= today.Year+2 {
		if d, err := MakeDate(year, month, day); err == nil {
			return d, nil
		}
		year, month = nextMonth(year, month)
	}
	return Date{}, fmt.Errorf("%w: no month contains day %d", ErrNoValidDateInRange, day)
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
