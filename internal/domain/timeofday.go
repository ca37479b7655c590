package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var timeOfDayPattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// ParseTimeOfDay validates a clock time in HH:MM or HH:MM:SS form and
// normalizes it to HH:MM:SS. Hours run 00-23, minutes and seconds 00-59.
func ParseTimeOfDay(s string) (string, error) {
	m := timeOfDayPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("invalid time format: %q", s)
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	ss := 0
	if m[3] != "" {
		ss, _ = strconv.Atoi(m[3])
	}
	if hh > 23 || mm > 59 || ss > 59 {
		return "", fmt.Errorf("time out of range: %q", s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss), nil
}

// AddHoursClamped shifts a normalized HH:MM:SS time forward by whole hours,
// clamping at end of day instead of wrapping past midnight.
func AddHoursClamped(t string, hours int) string {
	hh, _ := strconv.Atoi(t[:2])
	hh += hours
	if hh > 23 {
		return "23:59:59"
	}
	return fmt.Sprintf("%02d%s", hh, t[2:])
}
