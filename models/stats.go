// File: models/stats.go
package models

// OverallStats is derived from the attendance ledger on every read.
type OverallStats struct {
	Percentage       float64 `json:"percentage"`
	TotalClasses     int     `json:"totalClasses"`
	AttendedClasses  int     `json:"attendedClasses"` // present + late
	MissedClasses    int     `json:"missedClasses"`
	CancelledClasses int     `json:"cancelledClasses"`
	Standing         string  `json:"standing"`
}

type DailyStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

// ClassView pairs a slot with its record for a given date, if any.
type ClassView struct {
	Item   ScheduleItem      `json:"item"`
	Record *AttendanceRecord `json:"record,omitempty"`
}

type DayView struct {
	Date    string      `json:"date"`
	Day     string      `json:"day"`
	Classes []ClassView `json:"classes"`
	Stats   DailyStats  `json:"stats"`
}
