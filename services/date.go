package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wd_utils_go/models"
)

// ParseDate converts text in the given layout into local midnight of that day.
// Every field must be a plain decimal number and the triple must be a real
// calendar date: 1 <= month <= 12 and 1 <= day <= DaysInMonth.
func ParseDate(text string, format models.DateFormat) (time.Time, error) {
	d, err := ParseCalendarDate(text, format)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(time.Local), nil
}

// ParseCalendarDate is ParseDate without materializing a time.Time
func ParseCalendarDate(text string, format models.DateFormat) (models.CalendarDate, error) {
	if !format.IsValid() {
		return models.CalendarDate{}, fmt.Errorf("%w %s: unknown format %d", ErrInvalidDate, text, format)
	}

	parts := strings.Split(text, format.Separator())
	if len(parts) != 3 {
		return models.CalendarDate{}, fmt.Errorf("%w %s", ErrInvalidDate, text)
	}

	yi, mi, di := format.Order()
	year, okY := parseDateField(parts[yi])
	month, okM := parseDateField(parts[mi])
	day, okD := parseDateField(parts[di])
	if !okY || !okM || !okD {
		return models.CalendarDate{}, fmt.Errorf("%w %s", ErrInvalidDate, text)
	}

	if year < 1 || month < 1 || month > 12 || day < 1 || day > DaysInMonth(month, year) {
		return models.CalendarDate{}, fmt.Errorf("%w %s", ErrInvalidDate, text)
	}

	return models.CalendarDate{Year: year, Month: month, Day: day}, nil
}

// parseDateField accepts only ASCII digits. Signs and spaces are rejected.
func parseDateField(field string) (int, bool) {
	if field == "" || len(field) > 9 {
		return 0, false
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatDate renders t in the requested layout, optionally followed by the
// 24h clock. The zero time.Time is treated as an invalid date.
func FormatDate(t time.Time, format models.DateFormat, mode models.TimeMode) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("%w: zero time", ErrInvalidDate)
	}
	if !format.IsValid() {
		return "", fmt.Errorf("%w: unknown format %d", ErrInvalidDate, format)
	}

	out := FormatCalendarDate(models.CalendarDateOf(t), format)

	switch mode {
	case models.TimeHoursMinutes:
		out += " " + models.TimeOfDayOf(t).String(false)
	case models.TimeWithSeconds:
		out += " " + models.TimeOfDayOf(t).String(true)
	}

	return out, nil
}

// FormatCalendarDate renders d with two-digit month and day and an unpadded year
func FormatCalendarDate(d models.CalendarDate, format models.DateFormat) string {
	mm := PadTo2Digits(d.Month)
	dd := PadTo2Digits(d.Day)
	yyyy := strconv.Itoa(d.Year)

	switch format {
	case models.DateFormatBR:
		return dd + "/" + mm + "/" + yyyy
	case models.DateFormatUSA:
		return mm + "/" + dd + "/" + yyyy
	default:
		return yyyy + "-" + mm + "-" + dd
	}
}

// ConvertDate re-renders a date string from one layout into another
func ConvertDate(text string, from, to models.DateFormat) (string, error) {
	d, err := ParseCalendarDate(text, from)
	if err != nil {
		return "", err
	}
	if !to.IsValid() {
		return "", fmt.Errorf("%w: unknown format %d", ErrInvalidDate, to)
	}
	return FormatCalendarDate(d, to), nil
}

// DateToTime renders the clock of t as HH:MM:SS, or HH:MM when hideSeconds is set
func DateToTime(t time.Time, hideSeconds bool) string {
	return models.TimeOfDayOf(t).String(!hideSeconds)
}

// GetLastDayNumberOfMonth returns the two-digit number of days in month.
// Month 12 and above is read as December. Month 0 is December of the
// previous year. Negative months fall back to 31.
func GetLastDayNumberOfMonth(year, month int) string {
	switch {
	case month >= 12:
		return PadTo2Digits(31)
	case month == 0:
		return PadTo2Digits(DaysInMonth(12, year-1))
	default:
		return PadTo2Digits(DaysInMonth(month, year))
	}
}
