// File: services/schedule/layout.go
package schedule

import (
	"math"

	"attendai/models"
)

// LayoutOptions controls the weekly grid geometry.
type LayoutOptions struct {
	StartHour  int     // hour shown at the top of the grid
	HourHeight float64 // px per hour
	MinHeight  float64 // px
}

var DefaultLayout = LayoutOptions{StartHour: 8, HourHeight: 64, MinHeight: 32}

var palette = []string{"blue", "purple", "green", "orange", "pink", "indigo", "red", "teal"}

// SubjectColor picks a palette entry from a hash of the subject, so a subject
// keeps its color across the week.
func SubjectColor(subject string) string {
	var hash int32
	for _, r := range subject {
		hash = int32(r) + ((hash << 5) - hash)
	}
	idx := int(math.Abs(float64(hash))) % len(palette)
	return palette[idx]
}

// Position computes the top offset and height of a slot.
func Position(item models.ScheduleItem, opts LayoutOptions) (top, height float64) {
	start := float64(clockOrZero(item.StartTime)) / 60
	end := float64(clockOrZero(item.EndTime)) / 60

	top = (start - float64(opts.StartHour)) * opts.HourHeight
	height = math.Max((end-start)*opts.HourHeight, opts.MinHeight)
	return top, height
}

// Layout positions every schedule item on the weekly grid, grouped in weekday
// order and sorted by start time within a day.
func Layout(items []models.ScheduleItem, opts LayoutOptions) []models.SlotPosition {
	out := make([]models.SlotPosition, 0, len(items))
	for _, day := range models.Weekdays {
		for _, item := range SlotsForDay(items, day) {
			top, height := Position(item, opts)
			out = append(out, models.SlotPosition{
				Item:   item,
				Top:    top,
				Height: height,
				Color:  SubjectColor(item.Subject),
			})
		}
	}
	return out
}
