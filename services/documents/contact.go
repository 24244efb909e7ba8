package documents

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern     = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$")
	birthDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// birthMonthLength is kept apart from the calendar helpers so this package has no date dependencies
var birthMonthLength = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const (
	minBirthYear = 1000
	maxBirthYear = 3000
)

// ValidateEmail checks the address shape: a local part, "@" and at least two
// dot separated domain labels of up to 63 characters each
func ValidateEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}

// ValidateBirthDate checks a DD/MM/YYYY date with a year between 1000 and 3000
func ValidateBirthDate(raw string) bool {
	if !birthDatePattern.MatchString(raw) {
		return false
	}

	parts := strings.Split(raw, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if year < minBirthYear || year > maxBirthYear || month < 1 || month > 12 {
		return false
	}

	lengths := birthMonthLength
	if year%400 == 0 || (year%100 != 0 && year%4 == 0) {
		lengths[1] = 29
	}

	return day > 0 && day <= lengths[month-1]
}
