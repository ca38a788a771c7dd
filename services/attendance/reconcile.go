// File: services/attendance/reconcile.go
package attendance

import (
	"fmt"
	"time"

	"attendai/models"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used as part of the record key.
const DateLayout = "2006-01-02"

var newID = func() string { return uuid.New().String() }

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func matches(r models.AttendanceRecord, scheduleItemID, date string) bool {
	return r.ScheduleItemID == scheduleItemID && r.Date == date
}

// FindRecord returns the record for (scheduleItemID, date), if any.
func FindRecord(records []models.AttendanceRecord, scheduleItemID, date string) (models.AttendanceRecord, bool) {
	for _, r := range records {
		if matches(r, scheduleItemID, date) {
			return r, true
		}
	}
	return models.AttendanceRecord{}, false
}

// UpsertRecord replaces whatever is stored for (scheduleItemID, date) with a
// single record carrying status. The id of a prior record is reused.
// The input slice is left untouched.
func UpsertRecord(
	records []models.AttendanceRecord,
	scheduleItemID, date string,
	status models.AttendanceStatus,
	now time.Time,
) ([]models.AttendanceRecord, models.AttendanceRecord) {
	out := make([]models.AttendanceRecord, 0, len(records)+1)
	id := ""
	for _, r := range records {
		if matches(r, scheduleItemID, date) {
			if id == "" {
				id = r.ID
			}
			continue
		}
		out = append(out, r)
	}
	if id == "" {
		id = newID()
	}

	rec := models.AttendanceRecord{
		ID:             id,
		ScheduleItemID: scheduleItemID,
		Date:           date,
		Status:         status,
		Timestamp:      now.UnixMilli(),
	}
	return append(out, rec), rec
}

// DeleteRecord drops every record for (scheduleItemID, date). Deleting a
// missing pair returns an equal collection.
func DeleteRecord(records []models.AttendanceRecord, scheduleItemID, date string) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if !matches(r, scheduleItemID, date) {
			out = append(out, r)
		}
	}
	return out
}

// DeleteItemRecords drops every record that references scheduleItemID.
func DeleteItemRecords(records []models.AttendanceRecord, scheduleItemID string) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.ScheduleItemID != scheduleItemID {
			out = append(out, r)
		}
	}
	return out
}
