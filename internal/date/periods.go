package date

import "time"

// quarterStart returns the first month of the quarter containing m.
func quarterStart(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

// addMonths steps year/month forward by n months, n >= 0.
func addMonths(year int, month time.Month, n int) (int, time.Month) {
	idx := int(month) - 1 + n
	return year + idx/12, time.Month(idx%12 + 1)
}

func lastDayOf(year int, month time.Month) Date {
	return mustDate(year, month, DaysInMonth(year, month))
}

// StartOfNextMonth returns the first day of the month after today's.
func StartOfNextMonth(today Date) Date {
	y, m := addMonths(today.Year, today.Month, 1)
	return mustDate(y, m, 1)
}

// StartOfNextQuarter returns the first day of the next quarter. Quarters
// start in January, April, July and October.
func StartOfNextQuarter(today Date) Date {
	y, m := addMonths(today.Year, quarterStart(today.Month), 3)
	return mustDate(y, m, 1)
}

// StartOfNextYear returns January 1st of the following year.
func StartOfNextYear(today Date) Date {
	return mustDate(today.Year+1, time.January, 1)
}

// EndOfCurrentMonth returns the last day of today's month.
func EndOfCurrentMonth(today Date) Date {
	return lastDayOf(today.Year, today.Month)
}

// EndOfCurrentQuarter returns the last day of today's quarter.
func EndOfCurrentQuarter(today Date) Date {
	y, m := addMonths(today.Year, quarterStart(today.Month), 2)
	return lastDayOf(y, m)
}

// EndOfCurrentYear returns December 31st of today's year.
func EndOfCurrentYear(today Date) Date {
	return mustDate(today.Year, time.December, 31)
}

// EndOfNextMonth returns the last day of the month after today's.
func EndOfNextMonth(today Date) Date {
	y, m := addMonths(today.Year, today.Month, 1)
	return lastDayOf(y, m)
}

// EndOfNextQuarter returns the last day of the quarter after today's.
func EndOfNextQuarter(today Date) Date {
	y, m := addMonths(today.Year, quarterStart(today.Month), 5)
	return lastDayOf(y, m)
}

// EndOfNextYear returns December 31st of the following year.
func EndOfNextYear(today Date) Date {
	return mustDate(today.Year+1, time.December, 31)
}

// MarkerInfo describes one business period marker.
type MarkerInfo struct {
	Name        string
	Description string
	resolve     func(Date) Date
}

// Resolve returns the date the marker denotes relative to today.
func (m MarkerInfo) Resolve(today Date) Date {
	return m.resolve(today)
}

// Week markers are anchored on the next Monday, so "sow" never resolves to
// today and "eow" is the Sunday before it.
var markers = []MarkerInfo{
	{"sow", "start of next week (next Monday)", func(t Date) Date { return FindNextWeekday(t, time.Monday) }},
	{"soww", "start of next work week (next Monday)", func(t Date) Date { return FindNextWeekday(t, time.Monday) }},
	{"som", "start of next month", StartOfNextMonth},
	{"soq", "start of next quarter", StartOfNextQuarter},
	{"soy", "start of next year", StartOfNextYear},
	{"eow", "end of week (Sunday)", func(t Date) Date { return FindNextWeekday(t, time.Monday).AddDays(-1) }},
	{"eoww", "end of work week (next Saturday)", func(t Date) Date { return FindNextWeekday(t, time.Saturday) }},
	{"eom", "end of current month", EndOfCurrentMonth},
	{"eoq", "end of current quarter", EndOfCurrentQuarter},
	{"eoy", "end of current year", EndOfCurrentYear},
	{"eonw", "end of next week (Sunday)", func(t Date) Date { return FindNextWeekday(t, time.Monday).AddDays(6) }},
	{"eonm", "end of next month", EndOfNextMonth},
	{"eonq", "end of next quarter", EndOfNextQuarter},
	{"eony", "end of next year", EndOfNextYear},
}

var markersByName = func() map[string]MarkerInfo {
	m := make(map[string]MarkerInfo, len(markers))
	for _, mk := range markers {
		m[mk.Name] = mk
	}
	return m
}()

// Markers returns the period marker vocabulary in display order.
func Markers() []MarkerInfo {
	out := make([]MarkerInfo, len(markers))
	copy(out, markers)
	return out
}

// Marker resolves the named period marker relative to today.
func Marker(name string, today Date) (Date, bool) {
	mk, ok := markersByName[name]
	if !ok {
		return Date{}, false
	}
	return mk.Resolve(today), true
}
