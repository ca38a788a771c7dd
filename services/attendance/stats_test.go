package attendance

import (
	"testing"

	"attendai/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Scenario(t *testing.T) {
	records := []models.AttendanceRecord{
		{ScheduleItemID: "A", Date: "2024-01-01", Status: models.StatusPresent},
		{ScheduleItemID: "A", Date: "2024-01-02", Status: models.StatusAbsent},
		{ScheduleItemID: "B", Date: "2024-01-01", Status: models.StatusCancelled},
	}

	stats := ComputeStats(records)
	assert.Equal(t, 2, stats.TotalClasses)
	assert.Equal(t, 1, stats.AttendedClasses)
	assert.Equal(t, 1, stats.MissedClasses)
	assert.Equal(t, 1, stats.CancelledClasses)
	assert.InDelta(t, 50.0, stats.Percentage, 0.0001)
	assert.Equal(t, StandingAtRisk, stats.Standing)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.TotalClasses)
	assert.Equal(t, EmptyPercentage, stats.Percentage)
	assert.Equal(t, StandingNoData, stats.Standing)
}

func TestComputeStats_OnlyCancelled(t *testing.T) {
	stats := ComputeStats([]models.AttendanceRecord{{Status: models.StatusCancelled}})
	assert.Zero(t, stats.TotalClasses)
	assert.Equal(t, 1, stats.CancelledClasses)
	assert.Equal(t, EmptyPercentage, stats.Percentage)
}

func TestComputeStats_Totals(t *testing.T) {
	statuses := []models.AttendanceStatus{
		models.StatusPresent, models.StatusLate, models.StatusAbsent,
		models.StatusExcused, models.StatusCancelled, models.StatusCancelled,
	}
	var records []models.AttendanceRecord
	for _, s := range statuses {
		records = append(records, models.AttendanceRecord{Status: s})
	}

	stats := ComputeStats(records)
	assert.Equal(t, stats.TotalClasses, stats.AttendedClasses+stats.MissedClasses)
	assert.Equal(t, len(records), stats.TotalClasses+stats.CancelledClasses)
	assert.Equal(t, 2, stats.AttendedClasses)
	assert.Equal(t, 2, stats.MissedClasses)
}

func TestStanding(t *testing.T) {
	cases := map[float64]string{
		100:  StandingExcellent,
		90:   StandingExcellent,
		89.9: StandingOnTrack,
		75:   StandingOnTrack,
		60:   StandingSlipping,
		59:   StandingAtRisk,
		0:    StandingAtRisk,
	}
	for pct, want := range cases {
		assert.Equal(t, want, Standing(pct), pct)
	}
}

func TestDailyBreakdown(t *testing.T) {
	records := []models.AttendanceRecord{
		{Date: "2024-01-01", Status: models.StatusPresent},
		{Date: "2024-01-01", Status: models.StatusLate},
		{Date: "2024-01-01", Status: models.StatusAbsent},
		{Date: "2024-01-01", Status: models.StatusCancelled},
		{Date: "2024-01-02", Status: models.StatusPresent},
	}

	d := DailyBreakdown(records, "2024-01-01")
	assert.Equal(t, models.DailyStats{Total: 3, Present: 1, Absent: 1, Late: 1}, d)
}
