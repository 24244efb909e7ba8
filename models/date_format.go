package models

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat identifies one of the three supported textual date layouts
type DateFormat int

const (
	// DateFormatJS is YYYY-MM-DD
	DateFormatJS DateFormat = iota
	// DateFormatBR is DD/MM/YYYY
	DateFormatBR
	// DateFormatUSA is MM/DD/YYYY
	DateFormatUSA
)

// ParseDateFormat converts a configuration string into a DateFormat.
// Empty input selects JS.
func ParseDateFormat(value string) (DateFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", "JS":
		return DateFormatJS, nil
	case "BR":
		return DateFormatBR, nil
	case "USA":
		return DateFormatUSA, nil
	default:
		return DateFormatJS, fmt.Errorf("unknown date format: %s", value)
	}
}

func (f DateFormat) String() string {
	switch f {
	case DateFormatBR:
		return "BR"
	case DateFormatUSA:
		return "USA"
	default:
		return "JS"
	}
}

// Separator returns the field separator used by the layout
func (f DateFormat) Separator() string {
	if f == DateFormatJS {
		return "-"
	}
	return "/"
}

// Order returns the position of year, month and day inside a split date
func (f DateFormat) Order() (year, month, day int) {
	switch f {
	case DateFormatBR:
		return 2, 1, 0
	case DateFormatUSA:
		return 2, 0, 1
	default:
		return 0, 1, 2
	}
}

// IsValid reports whether f is one of the declared formats
func (f DateFormat) IsValid() bool {
	return f >= DateFormatJS && f <= DateFormatUSA
}

// TimeMode selects how much of the clock is appended to a formatted date
type TimeMode int

const (
	TimeNone TimeMode = iota
	TimeHoursMinutes
	TimeWithSeconds
)

// ParseTimeMode accepts the values used in configuration files:
// "false"/"none", "true"/"minutes" and "andSeconds"/"seconds".
func ParseTimeMode(value string) (TimeMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "none":
		return TimeNone, nil
	case "true", "minutes":
		return TimeHoursMinutes, nil
	case "andseconds", "seconds":
		return TimeWithSeconds, nil
	default:
		return TimeNone, fmt.Errorf("unknown time mode: %s", value)
	}
}

func (m TimeMode) String() string {
	switch m {
	case TimeHoursMinutes:
		return "true"
	case TimeWithSeconds:
		return "andSeconds"
	default:
		return "false"
	}
}

// CalendarDate is a civil date without time or location
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Time materializes the date at midnight in loc (time.Local when nil)
func (d CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// CalendarDateOf extracts the civil date of t in its own location
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: int(m), Day: d}
}

// TimeOfDay holds a wall clock reading
type TimeOfDay struct {
	Hours   int
	Minutes int
	Seconds int
}

// TimeOfDayOf extracts the clock fields of t
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hours: h, Minutes: m, Seconds: s}
}

// String renders HH:MM or HH:MM:SS
func (t TimeOfDay) String(withSeconds bool) string {
	if withSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
	}
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}
