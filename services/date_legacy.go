package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"wd_utils_go/models"
)

// legacyDateToken matches the "/Date(<ms><+|-><HHMM>)/" strings emitted by
// older JSON serializers
var legacyDateToken = regexp.MustCompile(`^/Date\((\d+)([+-])(\d{2})(\d{2})\)/$`)

// ParseLegacyDateToken decodes a "/Date(1731320280000-0300)/" token into a UTC
// instant. The signed offset is subtracted from the millisecond timestamp.
func ParseLegacyDateToken(token string) (time.Time, error) {
	m := legacyDateToken.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: legacy date token %q", ErrInvalidFormat, token)
	}

	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: legacy date token %q: %v", ErrInvalidFormat, token, err)
	}

	hours, _ := strconv.Atoi(m[3])
	minutes, _ := strconv.Atoi(m[4])
	offset := int64(hours*60+minutes) * OneMinute
	if m[2] == "-" {
		offset = -offset
	}

	return time.UnixMilli(ms - offset).UTC(), nil
}

// ParseCSharpDate is the previous name of ParseLegacyDateToken.
//
// Deprecated: use ParseLegacyDateToken.
func ParseCSharpDate(token string) (time.Time, error) {
	return ParseLegacyDateToken(token)
}

// ParseSpreadsheetSerial converts a 1900-system spreadsheet serial day number
// (as found in exported .xlsx cells) into a time.Time.
func ParseSpreadsheetSerial(serial float64) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 {
		return time.Time{}, fmt.Errorf("%w: spreadsheet serial %v", ErrInvalidDate, serial)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: spreadsheet serial %v: %v", ErrInvalidDate, serial, err)
	}
	return t, nil
}

// DateUSAToBR converts MM/DD/YYYY to DD/MM/YYYY. Empty input yields "".
//
// Deprecated: use ConvertDate(text, models.DateFormatUSA, models.DateFormatBR).
func DateUSAToBR(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	return ConvertDate(text, models.DateFormatUSA, models.DateFormatBR)
}

// DateToBR converts YYYY-MM-DD to DD/MM/YYYY, returning "" when the input is not a date.
//
// Deprecated: use ConvertDate(text, models.DateFormatJS, models.DateFormatBR).
func DateToBR(text string) string {
	out, err := ConvertDate(text, models.DateFormatJS, models.DateFormatBR)
	if err != nil {
		return ""
	}
	return out
}

// DateBRToJS converts DD/MM/YYYY to YYYY-MM-DD, returning "" when the input is not a date.
//
// Deprecated: use ConvertDate(text, models.DateFormatBR, models.DateFormatJS).
func DateBRToJS(text string) string {
	out, err := ConvertDate(text, models.DateFormatBR, models.DateFormatJS)
	if err != nil {
		return ""
	}
	return out
}

// DateToJS renders t as YYYY-MM-DD.
//
// Deprecated: use FormatDate(t, models.DateFormatJS, models.TimeNone).
func DateToJS(t time.Time) string {
	return FormatCalendarDate(models.CalendarDateOf(t), models.DateFormatJS)
}

// DateToDateTime renders t as "YYYY-MM-DD HH:MM:SS", dropping seconds when hideSeconds is set.
//
// Deprecated: use FormatDate with models.TimeWithSeconds or models.TimeHoursMinutes.
func DateToDateTime(t time.Time, hideSeconds bool) string {
	return DateToJS(t) + " " + DateToTime(t, hideSeconds)
}

// FormatDateToBR renders t as DD/MM/YYYY.
//
// Deprecated: use FormatDate(t, models.DateFormatBR, models.TimeNone).
func FormatDateToBR(t time.Time) (string, error) {
	return FormatDate(t, models.DateFormatBR, models.TimeNone)
}

// FormatTime is the previous name of DateToTime.
//
// Deprecated: use DateToTime.
func FormatTime(t time.Time, hideSeconds bool) string {
	return DateToTime(t, hideSeconds)
}

var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateToBRDate renders an ISO date-time string as "DD/MM/YYYY  HH:MM:SS".
// The two spaces between date and time are kept for callers that split on them.
// Strings without a zone are read in local time; RFC 3339 strings are converted to it.
// Unparsable input yields "".
//
// Deprecated: use ParseDate and FormatDate.
func DateToBRDate(text string, showSeconds, showTime bool) string {
	if text == "" {
		return ""
	}

	t, ok := parseISODateTime(text)
	if !ok {
		return ""
	}

	date := FormatCalendarDate(models.CalendarDateOf(t), models.DateFormatBR)
	if !showTime {
		return date
	}
	return date + "  " + DateToTime(t, !showSeconds)
}

func parseISODateTime(text string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.Local(), true
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
