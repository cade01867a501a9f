package datetime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

var (
	dateRe = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`)
	timeRe = regexp.MustCompile(`\d{1,2}:\d{1,2}`)
)

// Unmatched input falls back to values that can never validate.
var (
	noDate = [3]int{0, 0, 0}
	noTime = [2]int{24, 60}
)

// Date is a calendar day without time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate builds a Date, rejecting values that do not name a real day.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 {
		return Date{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, year, month, day)
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// At combines the date with a time-of-day. The result is in UTC.
func (d Date) At(hour, minute int) (time.Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %d:%d", ErrInvalidTime, hour, minute)
	}
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, time.UTC), nil
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// String formats the date as yyyy-mm-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate extracts the first yyyy-m-d looking token from text and
// validates it as a calendar date. Surrounding text is ignored.
func ParseDate(text string) (Date, error) {
	parts := noDate
	if m := dateRe.FindString(text); m != "" {
		if n, ok := splitInts(m, "-", 3); ok {
			copy(parts[:], n)
		}
	}
	return NewDate(parts[0], parts[1], parts[2])
}

// ParseTime extracts the first h:m looking token from text and combines it
// with the already validated date d.
func ParseTime(text string, d Date) (time.Time, error) {
	parts := noTime
	if m := timeRe.FindString(text); m != "" {
		if n, ok := splitInts(m, ":", 2); ok {
			copy(parts[:], n)
		}
	}
	return d.At(parts[0], parts[1])
}

func splitInts(s, sep string, want int) ([]int, bool) {
	fields := strings.Split(s, sep)
	if len(fields) != want {
		return nil, false
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
