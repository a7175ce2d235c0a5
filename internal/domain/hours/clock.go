// Package hours evaluates free-text opening hours of the form "9:00 AM - 5:00 PM".
//
// Ranges never wrap past midnight: "10:00 PM - 2:00 AM" contains no minute at all.
package hours

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rangeSeparator = " - "
	minutesPerHour = 60
	noon           = 12 * minutesPerHour
)

// Clock is a time of day in minutes since midnight.
type Clock int

// ParseClock parses "<h>:<mm> <AM|PM>" with h in 1..12 and mm in 00..59.
func ParseClock(s string) (Clock, error) {
	timePart, meridiem, ok := strings.Cut(s, " ")
	if !ok {
		return 0, malformed(s, "missing AM/PM")
	}

	hourText, minuteText, ok := strings.Cut(timePart, ":")
	if !ok {
		return 0, malformed(s, "missing ':' between hour and minute")
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil || !isDigits(hourText) || hour < 1 || hour > 12 {
		return 0, malformed(s, "hour must be a number between 1 and 12")
	}

	minute, err := strconv.Atoi(minuteText)
	if err != nil || !isDigits(minuteText) || len(minuteText) != 2 || minute < 0 || minute > 59 {
		return 0, malformed(s, "minute must be two digits between 00 and 59")
	}

	base := hour % 12 * minutesPerHour
	switch meridiem {
	case "AM":
	case "PM":
		base += noon
	default:
		return 0, malformed(s, "missing AM/PM")
	}

	return Clock(base + minute), nil
}

// String formats the clock as "h:mm AM".
func (c Clock) String() string {
	hour := int(c) / minutesPerHour
	minute := int(c) % minutesPerHour

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}

// Range is an inclusive opening window within one day.
type Range struct {
	Open  Clock
	Close Clock
}

// ParseRange parses "<clock> - <clock>".
func ParseRange(s string) (Range, error) {
	openText, closeText, ok := strings.Cut(s, rangeSeparator)
	if !ok {
		return Range{}, malformed(s, "missing ' - ' separator")
	}

	open, err := ParseClock(openText)
	if err != nil {
		return Range{}, withValue(err, s)
	}

	closing, err := ParseClock(closeText)
	if err != nil {
		return Range{}, withValue(err, s)
	}

	return Range{Open: open, Close: closing}, nil
}

// Contains reports open <= c <= close.
func (r Range) Contains(c Clock) bool {
	return r.Open <= c && c <= r.Close
}

// String formats the range in the stored descriptor format.
func (r Range) String() string {
	return r.Open.String() + rangeSeparator + r.Close.String()
}

// FromTwentyFourHour converts "HH:MM" into "h:mm AM".
func FromTwentyFourHour(s string) (string, error) {
	hourText, minuteText, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return "", malformed(s, "expected HH:MM")
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil || !isDigits(hourText) || hour < 0 || hour > 23 {
		return "", malformed(s, "hour must be between 00 and 23")
	}

	minute, err := strconv.Atoi(minuteText)
	if err != nil || !isDigits(minuteText) || len(minuteText) != 2 || minute < 0 || minute > 59 {
		return "", malformed(s, "minute must be two digits between 00 and 59")
	}

	return Clock(hour*minutesPerHour + minute).String(), nil
}

// FormatRange builds a descriptor from two "HH:MM" values.
func FormatRange(open24, close24 string) (string, error) {
	open, err := FromTwentyFourHour(open24)
	if err != nil {
		return "", err
	}

	closing, err := FromTwentyFourHour(close24)
	if err != nil {
		return "", err
	}

	return open + rangeSeparator + closing, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits. strconv.Atoi also takes a sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
