package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical storage form of a calendar date
const DateLayout = "2006-01-02"

// DisplayLayout is the form dates are rendered in for users
const DisplayLayout = "02.01.2006"

// ParseDate parses a canonical YYYY-MM-DD date.
// The value is built at noon local time. Dates that would roll over
// (2023-02-29, 2024-04-31) are rejected.
func ParseDate(text string) (time.Time, bool) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var nums [3]int
	for i, part := range parts {
		if !isDigits(part) {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	date := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, false
	}

	return date, true
}

// IsValidDate reports whether text is either empty or a valid canonical date
func IsValidDate(text string) bool {
	if text == "" {
		return true
	}
	_, ok := ParseDate(text)
	return ok
}

// FormatForDisplay rewrites YYYY-MM-DD into DD.MM.YYYY.
// Values already in display form pass through, a missing value renders as "-".
func FormatForDisplay(text string) string {
	if text == "" {
		return "-"
	}

	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return text
	}

	return parts[2] + "." + parts[1] + "." + parts[0]
}

// FormatDate renders t in canonical storage form
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysUntil returns the number of calendar days from the day of now to the
// given date, rounded up. Today is 0, tomorrow is 1, yesterday is -1.
func DaysUntil(text string, now time.Time) (int, bool) {
	target, ok := ParseDate(text)
	if !ok {
		return 0, false
	}

	return daysBetween(now, target), true
}

// DaysBetween counts calendar days from one canonical date to another
func DaysBetween(from, to string) (int, bool) {
	start, ok := ParseDate(from)
	if !ok {
		return 0, false
	}
	end, ok := ParseDate(to)
	if !ok {
		return 0, false
	}

	return daysBetween(start, end), true
}

func daysBetween(from, to time.Time) int {
	// Compare midnights in UTC so DST transitions cannot add or drop an hour.
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
