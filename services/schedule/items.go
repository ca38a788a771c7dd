// File: services/schedule/items.go
package schedule

import "attendai/models"

// SaveItem overwrites the item with the same id in place, or appends it.
// The input slice is never modified.
func SaveItem(items []models.ScheduleItem, item models.ScheduleItem) (out []models.ScheduleItem, created bool) {
	out = make([]models.ScheduleItem, 0, len(items)+1)
	replaced := false
	for _, existing := range items {
		if existing.ID == item.ID {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, item)
	}
	return out, !replaced
}

// RemoveItem drops the item with the given id.
func RemoveItem(items []models.ScheduleItem, id string) (out []models.ScheduleItem, removed bool) {
	out = make([]models.ScheduleItem, 0, len(items))
	for _, existing := range items {
		if existing.ID == id {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out, removed
}

// FindItem looks an item up by id.
func FindItem(items []models.ScheduleItem, id string) (models.ScheduleItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.ScheduleItem{}, false
}
