package attendance

import (
	"testing"
	"time"

	"attendai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPair(records []models.AttendanceRecord, itemID, date string) int {
	n := 0
	for _, r := range records {
		if r.ScheduleItemID == itemID && r.Date == date {
			n++
		}
	}
	return n
}

func TestUpsertRecord_SingleRecordPerPair(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		{ID: "a", ScheduleItemID: "math", Date: "2024-01-01", Status: models.StatusAbsent},
		{ID: "b", ScheduleItemID: "math", Date: "2024-01-01", Status: models.StatusLate},
		{ID: "c", ScheduleItemID: "art", Date: "2024-01-01", Status: models.StatusPresent},
	}

	out, rec := UpsertRecord(records, "math", "2024-01-01", models.StatusPresent, now)

	assert.Equal(t, 1, countPair(out, "math", "2024-01-01"))
	assert.Equal(t, models.StatusPresent, rec.Status)
	assert.Equal(t, "a", rec.ID)
	assert.Equal(t, now.UnixMilli(), rec.Timestamp)
	assert.Len(t, out, 2)
	assert.Len(t, records, 3, "input must not be modified")
}

func TestUpsertRecord_ReusesID(t *testing.T) {
	now := time.Now()
	out, first := UpsertRecord(nil, "math", "2024-01-01", models.StatusAbsent, now)
	require.NotEmpty(t, first.ID)

	out, second := UpsertRecord(out, "math", "2024-01-01", models.StatusExcused, now.Add(time.Minute))
	require.Len(t, out, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.StatusExcused, out[0].Status)
}

func TestUpsertRecord_NewPairGetsFreshID(t *testing.T) {
	out, a := UpsertRecord(nil, "math", "2024-01-01", models.StatusPresent, time.Now())
	out, b := UpsertRecord(out, "math", "2024-01-02", models.StatusPresent, time.Now())
	assert.Len(t, out, 2)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDeleteRecord(t *testing.T) {
	records := []models.AttendanceRecord{
		{ID: "a", ScheduleItemID: "math", Date: "2024-01-01"},
		{ID: "b", ScheduleItemID: "math", Date: "2024-01-02"},
	}

	assert.Equal(t, records, DeleteRecord(records, "math", "2024-03-03"))
	assert.Equal(t, records, DeleteRecord(records, "art", "2024-01-01"))

	out := DeleteRecord(records, "math", "2024-01-01")
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestDeleteItemRecords(t *testing.T) {
	records := []models.AttendanceRecord{
		{ID: "a", ScheduleItemID: "math", Date: "2024-01-01"},
		{ID: "b", ScheduleItemID: "art", Date: "2024-01-01"},
		{ID: "c", ScheduleItemID: "math", Date: "2024-01-08"},
	}
	out := DeleteItemRecords(records, "math")
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-02-29")
	assert.NoError(t, err)

	for _, s := range []string{"", "2024-2-1", "01/02/2024", "2023-02-29", "2024-01-01T00:00:00Z"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}
