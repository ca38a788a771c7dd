// File: services/schedule/clock.go
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidClock = errors.New("invalid time of day")

// clockPattern matches "9", "9:05", "09:05", "9am", "9:05 PM", "9:05 p.m.".
var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(?:([ap])\.?m?\.?)?$`)

// ParseClock converts a time-of-day string into minutes since midnight.
// 12-hour values with a meridian and 24-hour values without one are both accepted.
func ParseClock(s string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	m := clockPattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	if minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	switch m[3] {
	case "a", "p":
		if hours < 1 || hours > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		if hours == 12 {
			hours = 0
		}
		if m[3] == "p" {
			hours += 12
		}
	default:
		if hours > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}
	return hours*60 + minutes, nil
}

// clockOrZero is used for ordering: unparseable values sort as midnight.
func clockOrZero(s string) int {
	v, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return v
}

// CompareClocks orders two time-of-day strings chronologically.
func CompareClocks(a, b string) int {
	return clockOrZero(a) - clockOrZero(b)
}

// FormatClock renders minutes since midnight as "H:MM AM".
func FormatClock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	h, m := minutes/60, minutes%60
	meridian := "AM"
	if h >= 12 {
		meridian = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, meridian)
}
