// File: services/attendance/stats.go
package attendance

import "attendai/models"

// EmptyPercentage is reported when there are no active (non-cancelled) records.
const EmptyPercentage = 0.0

const (
	StandingNoData    = "no_data"
	StandingExcellent = "excellent"
	StandingOnTrack   = "on_track"
	StandingSlipping  = "slipping"
	StandingAtRisk    = "at_risk"
)

// ComputeStats aggregates the ledger. Cancelled classes are excluded from the
// percentage; late counts as attended.
func ComputeStats(records []models.AttendanceRecord) models.OverallStats {
	var stats models.OverallStats
	for _, r := range records {
		if r.Status == models.StatusCancelled {
			stats.CancelledClasses++
			continue
		}
		stats.TotalClasses++
		if r.Status.Attended() {
			stats.AttendedClasses++
		}
	}
	stats.MissedClasses = stats.TotalClasses - stats.AttendedClasses

	stats.Percentage = EmptyPercentage
	if stats.TotalClasses > 0 {
		stats.Percentage = float64(stats.AttendedClasses) / float64(stats.TotalClasses) * 100
	}

	stats.Standing = StandingNoData
	if stats.TotalClasses > 0 || stats.CancelledClasses > 0 {
		stats.Standing = Standing(stats.Percentage)
	}
	return stats
}

// Standing buckets a percentage.
func Standing(percentage float64) string {
	switch {
	case percentage >= 90:
		return StandingExcellent
	case percentage >= 75:
		return StandingOnTrack
	case percentage >= 60:
		return StandingSlipping
	default:
		return StandingAtRisk
	}
}

// DailyBreakdown counts the records of one date. Excused and cancelled
// records are not counted.
func DailyBreakdown(records []models.AttendanceRecord, date string) models.DailyStats {
	var d models.DailyStats
	for _, r := range records {
		if r.Date != date {
			continue
		}
		switch r.Status {
		case models.StatusPresent:
			d.Present++
		case models.StatusAbsent:
			d.Absent++
		case models.StatusLate:
			d.Late++
		default:
			continue
		}
		d.Total++
	}
	return d
}
