package features

import "fmt"

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MaxDaysInMonth returns the number of days in the given month of year.
// Months outside 1..12 report 31.
func MaxDaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// Timestamp is the calendar hour a prediction is requested for.
type Timestamp struct {
	Year  int `json:"year" form:"year"`
	Month int `json:"month" form:"month"`
	Day   int `json:"day" form:"day"`
	Hour  int `json:"hour" form:"hour"`
}

// Validate checks month, day and hour bounds. Year is not range-checked here.
func (t Timestamp) Validate() error {
	if t.Month < 1 || t.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", t.Month)
	}
	if maxDays := MaxDaysInMonth(t.Year, t.Month); t.Day < 1 || t.Day > maxDays {
		return fmt.Errorf("day must be between 1 and %d for %04d-%02d, got %d", maxDays, t.Year, t.Month, t.Day)
	}
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("hour must be between 0 and 23, got %d", t.Hour)
	}
	return nil
}

// Encode builds the feature vector for t.
func (t Timestamp) Encode() Vector {
	return Encode(t.Hour, t.Day, t.Month, t.Year)
}
