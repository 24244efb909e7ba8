package services

import "math"

// IsLeapYear applies the Gregorian rule. Non-positive years are never leap.
func IsLeapYear(year int) bool {
	if year <= 0 {
		return false
	}
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsLeapYearFloat is IsLeapYear for values that may not be whole numbers,
// such as years decoded from JSON. Fractional years are never leap.
func IsLeapYearFloat(year float64) bool {
	if math.IsNaN(year) || math.IsInf(year, 0) || year != math.Trunc(year) {
		return false
	}
	if year <= 0 || year > math.MaxInt32 {
		return false
	}
	return IsLeapYear(int(year))
}

// DaysInMonth returns the length of month (1-12) in year.
// Months outside 1-12 report 31 so callers can treat the value as an upper bound.
func DaysInMonth(month, year int) int {
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
