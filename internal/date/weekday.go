package date

import (
	"fmt"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// weekdayPattern is the alternation used by the weekday shapes. It must list
// exactly the keys of weekdayNames.
const weekdayPattern = `monday|mon|tuesday|tue|wednesday|wed|thursday|thu|friday|fri|saturday|sat|sunday|sun`

// LookupWeekday maps a lower case English weekday name or abbreviation to
// its weekday.
func LookupWeekday(name string) (time.Weekday, error) {
	if wd, ok := weekdayNames[name]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekdayName, name)
}

// mondayIndex numbers weekdays from Monday = 0 to Sunday = 6.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func daysUntil(today Date, target time.Weekday) int {
	return mondayIndex(target) - mondayIndex(today.Weekday())
}

// FindNextWeekday returns the next occurrence of target strictly after
// today. When today is already target the result is a week away.
func FindNextWeekday(today Date, target time.Weekday) Date {
	days := daysUntil(today, target)
	if days <= 0 {
		days += 7
	}
	return today.AddDays(days)
}

// FindWeekdayOffset resolves "<weeksAhead><weekday>". With weeksAhead == 0 it
// is FindNextWeekday. Otherwise target's day in the current Monday-based
// week, which may be today or already past, is moved weeksAhead weeks on.
// weeksAhead*7 must fit in a time.Time day offset; Resolve rejects larger
// counts before calling.
func FindWeekdayOffset(today Date, target time.Weekday, weeksAhead int) Date {
	if weeksAhead == 0 {
		return FindNextWeekday(today, target)
	}
	return today.AddDays(daysUntil(today, target) + weeksAhead*7)
}

// NextWeekWeekday resolves "n<weekday>": the occurrence one week after the
// next one.
func NextWeekWeekday(today Date, target time.Weekday) Date {
	return FindNextWeekday(today, target).AddDays(7)
}
