package date

import "fmt"

// Months and years are fixed 30 and 365 day spans, not calendar steps, so
// "12m" and "1y" resolve to different dates.
const (
	daysPerMonth = 30
	daysPerYear  = 365

	// maxOffsetDays bounds every offset so the result stays inside the
	// range time.Time represents.
	maxOffsetDays = 10000 * daysPerYear
)

var unitDays = map[string]int{
	"d": 1, "day": 1, "days": 1,
	"w": 7, "wk": 7, "wks": 7, "week": 7, "weeks": 7,
	"m": daysPerMonth, "mth": daysPerMonth, "mths": daysPerMonth, "month": daysPerMonth, "months": daysPerMonth,
	"y": daysPerYear, "yr": daysPerYear, "yrs": daysPerYear, "year": daysPerYear, "years": daysPerYear,
}

// ApplyOffset adds amount units to today. Negative amounts move backwards.
func ApplyOffset(today Date, amount int, unit string) (Date, error) {
	days, ok := unitDays[unit]
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidTimeUnit, unit)
	}
	n, err := offsetDays(amount, days)
	if err != nil {
		return Date{}, err
	}
	return today.AddDays(n), nil
}

// offsetDays returns amount*span, failing with ErrNoValidDateInRange when
// the product exceeds maxOffsetDays in either direction.
func offsetDays(amount, span int) (int, error) {
	if amount > maxOffsetDays/span || amount < -maxOffsetDays/span {
		return 0, fmt.Errorf("%w: offset %d x %d days is too large", ErrNoValidDateInRange, amount, span)
	}
	return amount * span, nil
}
