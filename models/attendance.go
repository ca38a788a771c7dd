// File: models/attendance.go
package models

type AttendanceStatus string

const (
	StatusPresent   AttendanceStatus = "PRESENT"
	StatusAbsent    AttendanceStatus = "ABSENT"
	StatusLate      AttendanceStatus = "LATE"
	StatusExcused   AttendanceStatus = "EXCUSED"
	StatusCancelled AttendanceStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused, StatusCancelled:
		return true
	}
	return false
}

// Attended reports whether the status counts towards attended classes.
func (s AttendanceStatus) Attended() bool {
	return s == StatusPresent || s == StatusLate
}

// AttendanceRecord marks one schedule item on one calendar date.
type AttendanceRecord struct {
	ID             string           `bson:"id" json:"id"`
	ScheduleItemID string           `bson:"scheduleItemId" json:"scheduleItemId"`
	Date           string           `bson:"date" json:"date"` // YYYY-MM-DD
	Status         AttendanceStatus `bson:"status" json:"status"`
	Timestamp      int64            `bson:"timestamp" json:"timestamp"` // unix millis
}

// MarkAttendanceRequest is the body of PUT /api/data/:userId/attendance.
type MarkAttendanceRequest struct {
	ScheduleItemID string           `json:"scheduleItemId" binding:"required"`
	Date           string           `json:"date" binding:"required"`
	Status         AttendanceStatus `json:"status" binding:"required"`
}
