package date

import (
	"errors"
	"testing"
	"time"
)

func TestLookupMonth(t *testing.T) {
	tests := []struct {
		name    string
		want    time.Month
		wantErr bool
	}{
		{"jan", time.January, false},
		{"January", time.January, false},
		{"MAY", time.May, false},
		{"sep", time.September, false},
		{"september", time.September, false},
		{"sept", 0, true},
		{"ja", 0, true},
		{"jxn", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := LookupMonth(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("LookupMonth(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidMonthName) {
			t.Errorf("LookupMonth(%q) error = %v, want ErrInvalidMonthName", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("LookupMonth(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNextDayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		today   Date
		day     int
		want    Date
		wantErr error
	}{
		{"later this month", d(2025, 12, 15), 20, d(2025, 12, 20), nil},
		{"same day moves on", d(2025, 12, 15), 15, d(2026, 1, 15), nil},
		{"earlier wraps year", d(2025, 12, 15), 1, d(2026, 1, 1), nil},
		{"31st skips february", d(2026, 1, 31), 31, d(2026, 3, 31), nil},
		{"30th skips february", d(2026, 1, 30), 30, d(2026, 3, 30), nil},
		{"29th finds leap february", d(2028, 1, 30), 29, d(2028, 2, 29), nil},
		{"29th skips common february", d(2027, 1, 29), 29, d(2027, 3, 29), nil},
		{"31st skips april", d(2025, 3, 31), 31, d(2025, 5, 31), nil},
		{"day zero never exists", d(2025, 12, 15), 0, Date{}, ErrNoValidDateInRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextDayOfMonth(tt.today, tt.day)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	today := d(2025, 12, 15)
	tests := []struct {
		name    string
		today   Date
		month   time.Month
		day     int
		want    Date
		wantErr bool
	}{
		{"later this year", today, time.December, 16, d(2025, 12, 16), false},
		{"today counts", today, time.December, 15, d(2025, 12, 15), false},
		{"passed rolls to next year", today, time.December, 14, d(2026, 12, 14), false},
		{"january rolls", today, time.January, 16, d(2026, 1, 16), false},
		{"leap day not in either year", today, time.February, 29, Date{}, true},
		{"leap day next year", d(2027, 6, 1), time.February, 29, d(2028, 2, 29), false},
		{"leap day this year", d(2028, 1, 1), time.February, 29, d(2028, 2, 29), false},
		{"invalid month", today, 13, 1, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextOccurrence(tt.today, tt.month, tt.day)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCalendarDate) {
					t.Errorf("error = %v, want ErrInvalidCalendarDate", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
