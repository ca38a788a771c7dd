// File: services/schedule/slots.go
package schedule

import (
	"sort"
	"strings"
	"time"

	"attendai/models"
)

// NormalizeDay returns the canonical weekday name for s, matching case-insensitively.
// Three-letter abbreviations ("mon", "Tue") are accepted too.
func NormalizeDay(s string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return "", false
	}
	for _, day := range models.Weekdays {
		lower := strings.ToLower(day)
		if needle == lower || (len(needle) == 3 && strings.HasPrefix(lower, needle)) {
			return day, true
		}
	}
	return "", false
}

// DayOf returns the weekday name of t.
func DayOf(t time.Time) string {
	return t.Weekday().String()
}

// SlotsForDay returns the items recurring on day, ordered by start time.
func SlotsForDay(items []models.ScheduleItem, day string) []models.ScheduleItem {
	out := make([]models.ScheduleItem, 0)
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item.Day), strings.TrimSpace(day)) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return CompareClocks(out[i].StartTime, out[j].StartTime) < 0
	})
	return out
}

// SlotsForDate returns the items recurring on the weekday of date.
func SlotsForDate(items []models.ScheduleItem, date time.Time) []models.ScheduleItem {
	return SlotsForDay(items, DayOf(date))
}
