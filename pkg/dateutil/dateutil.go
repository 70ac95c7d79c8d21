package dateutil

import (
	"strings"
	"time"
)

// DisplayLayout is the day/month/year layout used in rendered reports.
const DisplayLayout = "02/01/2006"

// ISOLayout is the year-month-day layout.
const ISOLayout = "2006-01-02"

// inputLayouts lists the accepted textual date forms, tried in order.
// Single-digit day and month fields also match zero-padded input.
var inputLayouts = []string{"2/1/2006", "2006-1-2"}

// Date returns the civil date y-m-d at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Civil drops the clock and zone of t, keeping its calendar date.
func Civil(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate parses s as day/month/year or year-month-day, with or without
// leading zeros. Blank or unparseable input yields nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDisplay formats t as dd/mm/yyyy.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// AddMonths adds months to a date, clamping the day to the length of the
// target month (Jan 31 + 1 month = Feb 28/29). time.AddDate would roll over
// into the following month instead.
func AddMonths(date time.Time, months int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + total/12
	m := total % 12
	if m < 0 {
		m += 12
		year--
	}
	month := time.Month(m + 1)
	day := date.Day()
	if dim := DaysInMonth(year, month); day > dim {
		day = dim
	}
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// AddYears adds a specified number of years to a date (Feb 29 + 1 year = Feb 28).
func AddYears(date time.Time, years int) time.Time {
	return AddMonths(date, years*12)
}

// Delta is a calendar difference split into whole years, whole months and
// remaining days.
type Delta struct {
	Years  int
	Months int
	Days   int
}

// Diff returns the calendar difference from -> to as years, months and days.
// The month count is the largest n such that AddMonths(from, n) <= to; the
// days are what remains after that. from must not be after to; an inverted
// pair yields the zero Delta.
func Diff(from, to time.Time) Delta {
	from, to = Civil(from), Civil(to)
	if to.Before(from) {
		return Delta{}
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	anchor := AddMonths(from, months)
	for to.Before(anchor) {
		months--
		anchor = AddMonths(from, months)
	}
	return Delta{
		Years:  months / 12,
		Months: months % 12,
		Days:   DaysBetween(anchor, to),
	}
}

// DaysBetween counts whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Civil(b).Sub(Civil(a)).Hours() / 24)
}

// MinTime returns the earlier of a and b.
func MinTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
