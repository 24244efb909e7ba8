package services

import (
	"time"

	"wd_utils_go/models"
)

// Durations in milliseconds, matching timestamps exchanged with browser clients
const (
	OneSecond int64 = 1000
	OneMinute       = OneSecond * 60
	OneHour         = OneMinute * 60
	OneDay          = OneHour * 24
)

// Clock returns the current instant
type Clock func() time.Time

// SystemClock reads the process wall clock
var SystemClock Clock = time.Now

// DateHelper answers "today"-relative questions against an injected clock.
// All arithmetic is done with time.Date normalization in the clock's own location.
type DateHelper struct {
	clock Clock
}

// NewDateHelper creates a helper. A nil clock uses SystemClock.
func NewDateHelper(clock Clock) *DateHelper {
	if clock == nil {
		clock = SystemClock
	}
	return &DateHelper{clock: clock}
}

func (h *DateHelper) now() time.Time {
	return h.clock()
}

// civil builds noon of the given (possibly unnormalized) date so that DST
// transitions at midnight never move the result to another day
func civil(ref time.Time, year int, month time.Month, day int) models.CalendarDate {
	return models.CalendarDateOf(time.Date(year, month, day, 12, 0, 0, 0, ref.Location()))
}

// Today returns the current date as YYYY-MM-DD
func (h *DateHelper) Today() string {
	return FormatCalendarDate(models.CalendarDateOf(h.now()), models.DateFormatJS)
}

// TodayBR returns the current date as DD/MM/YYYY
func (h *DateHelper) TodayBR() string {
	return FormatCalendarDate(models.CalendarDateOf(h.now()), models.DateFormatBR)
}

// Yesterday returns the previous day as YYYY-MM-DD, rolling over month and year boundaries
func (h *DateHelper) Yesterday() string {
	now := h.now()
	y, m, d := now.Date()
	return FormatCalendarDate(civil(now, y, m, d-1), models.DateFormatJS)
}

// FirstDayOfMonth returns the first day of the current month as YYYY-MM-DD
func (h *DateHelper) FirstDayOfMonth() string {
	now := h.now()
	y, m, _ := now.Date()
	return FormatCalendarDate(civil(now, y, m, 1), models.DateFormatJS)
}

// LastDayPreviousMonth returns the last day of the previous month as YYYY-MM-DD.
// Day 0 of the current month normalizes to that date.
func (h *DateHelper) LastDayPreviousMonth() string {
	now := h.now()
	y, m, _ := now.Date()
	return FormatCalendarDate(civil(now, y, m, 0), models.DateFormatJS)
}

// NowTime returns the current clock as HH:MM
func (h *DateHelper) NowTime() string {
	return DateToTime(h.now(), true)
}

var systemDates = NewDateHelper(nil)

// GetToday returns today's date (YYYY-MM-DD) from the system clock
func GetToday() string { return systemDates.Today() }

// GetTodayBR returns today's date (DD/MM/YYYY) from the system clock
func GetTodayBR() string { return systemDates.TodayBR() }

// GetYesterday returns yesterday's date (YYYY-MM-DD) from the system clock
func GetYesterday() string { return systemDates.Yesterday() }

// GetFirstDayOfMonth returns the first day of the current month from the system clock
func GetFirstDayOfMonth() string { return systemDates.FirstDayOfMonth() }

// GetLastDayPreviousMonth returns the last day of the previous month from the system clock
func GetLastDayPreviousMonth() string { return systemDates.LastDayPreviousMonth() }

// GetNowTime returns the current HH:MM from the system clock
func GetNowTime() string { return systemDates.NowTime() }
