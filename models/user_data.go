// File: models/user_data.go
package models

import "time"

// UserData is the per-user document holding both collections.
type UserData struct {
	UserID    string             `bson:"userId" json:"-"`
	Schedule  []ScheduleItem     `bson:"schedule" json:"schedule"`
	Records   []AttendanceRecord `bson:"records" json:"records"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"-"`
}

// UserDataPatch is a field-wise merge request: a nil field keeps the stored value.
type UserDataPatch struct {
	Schedule *[]ScheduleItem     `json:"schedule,omitempty"`
	Records  *[]AttendanceRecord `json:"records,omitempty"`
}

// Empty reports whether the patch carries no fields.
func (p UserDataPatch) Empty() bool {
	return p.Schedule == nil && p.Records == nil
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (d *UserData) Normalize() {
	if d.Schedule == nil {
		d.Schedule = []ScheduleItem{}
	}
	if d.Records == nil {
		d.Records = []AttendanceRecord{}
	}
}
