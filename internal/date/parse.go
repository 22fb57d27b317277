// Package date resolves short free-form date expressions ("16/01/2024",
// "eonq", "nfriday", "3weeks", "15th") into calendar dates relative to a
// reference moment.
package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Pattern names the input shape an expression matched.
type Pattern string

const (
	PatternYMD             Pattern = "ymd"
	PatternDMY             Pattern = "dmy"
	PatternKeyword         Pattern = "keyword"
	PatternWeekday         Pattern = "weekday"
	PatternNextWeekday     Pattern = "next-weekday"
	PatternNumberedWeekday Pattern = "numbered-weekday"
	PatternMarker          Pattern = "marker"
	PatternOrdinal         Pattern = "ordinal"
	PatternRelative        Pattern = "relative"
	PatternDayMonth        Pattern = "day-month"
	PatternMonthDay        Pattern = "month-day"
	PatternAlphaDMY        Pattern = "alpha-dmy"
	PatternAlphaYMD        Pattern = "alpha-ymd"
	PatternShortDMY        Pattern = "short-dmy"
)

// Resolution is a successfully resolved expression.
type Resolution struct {
	Input   string
	Pattern Pattern
	Date    Date
}

var (
	ymdRegex           = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	dmyRegex           = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	nextWeekdayRegex   = regexp.MustCompile(`^n(` + weekdayPattern + `)$`)
	numberedWeekdayRex = regexp.MustCompile(`^(\d+)(` + weekdayPattern + `)$`)
	ordinalRegex       = regexp.MustCompile(`^(\d{1,2})(st|nd|rd|th)$`)
	relativeRegex      = regexp.MustCompile(`^(-?\d+)([a-z]+)$`)
	dayMonthRegex      = regexp.MustCompile(`^(\d{1,2})[-/]([a-z]+)$`)
	monthDayRegex      = regexp.MustCompile(`^([a-z]+)[-/](\d{1,2})$`)
	alphaDMYRegex      = regexp.MustCompile(`^(\d{1,2})[-/]([a-z]+)[-/](\d{4})$`)
	alphaYMDRegex      = regexp.MustCompile(`^(\d{4})[-/]([a-z]+)[-/](\d{1,2})$`)
	shortDMYRegex      = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})$`)
)

var keywordOffsets = map[string]int{
	"today": 0, "tod": 0, "now": 0,
	"yesterday": -1, "yes": -1,
	"tomorrow": 1, "tom": 1,
}

// rule pairs a shape with its resolver. match returns the captured fields
// (index 0 is the whole input) when the shape fits.
type rule struct {
	pattern Pattern
	match   func(input string) ([]string, bool)
	resolve func(fields []string, today Date) (Date, error)
}

// rules is evaluated top to bottom and the first shape that fits decides the
// outcome, including its failure. Several shapes overlap so the order is
// significant.
var rules = []rule{
	{PatternYMD, matchRegex(ymdRegex), resolveYMD},
	{PatternDMY, matchRegex(dmyRegex), resolveDMY},
	{PatternKeyword, matchWord(keywordOffsets), resolveKeyword},
	{PatternWeekday, matchWord(weekdayNames), resolveWeekday},
	{PatternNextWeekday, matchRegex(nextWeekdayRegex), resolveNextWeekday},
	{PatternNumberedWeekday, matchRegex(numberedWeekdayRex), resolveNumberedWeekday},
	{PatternMarker, matchWord(markersByName), resolveMarker},
	{PatternOrdinal, matchOrdinal, resolveOrdinal},
	{PatternRelative, matchRegex(relativeRegex), resolveRelative},
	{PatternDayMonth, matchRegex(dayMonthRegex), resolveDayMonth},
	{PatternMonthDay, matchRegex(monthDayRegex), resolveMonthDay},
	{PatternAlphaDMY, matchRegex(alphaDMYRegex), resolveAlphaDMY},
	{PatternAlphaYMD, matchRegex(alphaYMDRegex), resolveAlphaYMD},
	{PatternShortDMY, matchRegex(shortDMYRegex), resolveShortDMY},
}

// Parse resolves input relative to the calendar date of now, in now's
// location.
func Parse(input string, now time.Time) (Date, error) {
	res, err := Resolve(input, now)
	if err != nil {
		return Date{}, err
	}
	return res.Date, nil
}

// ParseWith reads clock once and resolves input against that moment.
func ParseWith(input string, clock Clock) (Date, error) {
	return Parse(input, clock.Now())
}

// Resolve is Parse, also reporting which pattern matched. Errors are always
// *ParseError.
func Resolve(input string, now time.Time) (Resolution, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	today := DateOf(now)

	for _, r := range rules {
		fields, ok := r.match(normalized)
		if !ok {
			continue
		}
		d, err := r.resolve(fields, today)
		if err != nil {
			return Resolution{}, newParseError(input, r.pattern, err)
		}
		return Resolution{Input: input, Pattern: r.pattern, Date: d}, nil
	}
	return Resolution{}, &ParseError{Kind: UnrecognizedFormat, Input: input, Err: ErrUnrecognizedFormat}
}

// Classify returns the pattern whose shape input fits, without resolving it.
func Classify(input string) (Pattern, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, r := range rules {
		if _, ok := r.match(normalized); ok {
			return r.pattern, true
		}
	}
	return "", false
}

func matchRegex(re *regexp.Regexp) func(string) ([]string, bool) {
	return func(input string) ([]string, bool) {
		m := re.FindStringSubmatch(input)
		return m, m != nil
	}
}

func matchWord[V any](words map[string]V) func(string) ([]string, bool) {
	return func(input string) ([]string, bool) {
		if _, ok := words[input]; ok {
			return []string{input}, true
		}
		return nil, false
	}
}

// matchOrdinal accepts any ordinal suffix on a numeral up to 31. Larger
// numerals are left to the later shapes.
func matchOrdinal(input string) ([]string, bool) {
	m := ordinalRegex.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}
	if n, _ := strconv.Atoi(m[1]); n > 31 {
		return nil, false
	}
	return m, true
}

func resolveYMD(f []string, _ Date) (Date, error) {
	return makeFromFields(f[1], f[2], f[3])
}

func resolveDMY(f []string, _ Date) (Date, error) {
	return makeFromFields(f[3], f[2], f[1])
}

func makeFromFields(year, month, day string) (Date, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, err
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Date{}, err
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, err
	}
	return MakeDate(y, time.Month(m), d)
}

func resolveKeyword(f []string, today Date) (Date, error) {
	return today.AddDays(keywordOffsets[f[0]]), nil
}

func resolveWeekday(f []string, today Date) (Date, error) {
	wd, err := LookupWeekday(f[0])
	if err != nil {
		return Date{}, err
	}
	return FindNextWeekday(today, wd), nil
}

func resolveNextWeekday(f []string, today Date) (Date, error) {
	wd, err := LookupWeekday(f[1])
	if err != nil {
		return Date{}, err
	}
	return NextWeekWeekday(today, wd), nil
}

func resolveNumberedWeekday(f []string, today Date) (Date, error) {
	weeks, err := strconv.Atoi(f[1])
	if err != nil {
		return Date{}, err
	}
	if _, err := offsetDays(weeks, 7); err != nil {
		return Date{}, err
	}
	wd, err := LookupWeekday(f[2])
	if err != nil {
		return Date{}, err
	}
	return FindWeekdayOffset(today, wd, weeks), nil
}

func resolveMarker(f []string, today Date) (Date, error) {
	d, ok := Marker(f[0], today)
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown marker %q", ErrUnrecognizedFormat, f[0])
	}
	return d, nil
}

func resolveOrdinal(f []string, today Date) (Date, error) {
	day, err := strconv.Atoi(f[1])
	if err != nil {
		return Date{}, err
	}
	return nextDayOfMonth(today, day)
}

func resolveRelative(f []string, today Date) (Date, error) {
	amount, err := strconv.Atoi(f[1])
	if err != nil {
		return Date{}, err
	}
	return ApplyOffset(today, amount, f[2])
}

func resolveDayMonth(f []string, today Date) (Date, error) {
	return resolveMonthAndDay(f[2], f[1], today)
}

func resolveMonthDay(f []string, today Date) (Date, error) {
	return resolveMonthAndDay(f[1], f[2], today)
}

func resolveMonthAndDay(monthName, day string, today Date) (Date, error) {
	month, err := LookupMonth(monthName)
	if err != nil {
		return Date{}, err
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, err
	}
	return nextOccurrence(today, month, d)
}

func resolveAlphaDMY(f []string, _ Date) (Date, error) {
	return makeFromAlpha(f[3], f[2], f[1])
}

func resolveAlphaYMD(f []string, _ Date) (Date, error) {
	return makeFromAlpha(f[1], f[2], f[3])
}

func makeFromAlpha(year, monthName, day string) (Date, error) {
	month, err := LookupMonth(monthName)
	if err != nil {
		return Date{}, err
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, err
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, err
	}
	return MakeDate(y, month, d)
}

func resolveShortDMY(f []string, today Date) (Date, error) {
	day, err := strconv.Atoi(f[1])
	if err != nil {
		return Date{}, err
	}
	month, err := strconv.Atoi(f[2])
	if err != nil {
		return Date{}, err
	}
	return nextOccurrence(today, time.Month(month), day)
}
