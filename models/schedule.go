// File: models/schedule.go
package models

// ScheduleItem is one recurring weekly class slot.
type ScheduleItem struct {
	ID        string `bson:"id" json:"id"`
	Day       string `bson:"day" json:"day" validate:"required,weekday"`             // "Monday", "Tuesday", ...
	StartTime string `bson:"startTime" json:"startTime" validate:"required,clock"` // e.g. "9:00 AM"
	EndTime   string `bson:"endTime" json:"endTime" validate:"required,clock"`
	Subject   string `bson:"subject" json:"subject" validate:"required"`
	Room      string `bson:"room,omitempty" json:"room,omitempty"`
}

// Weekdays lists the canonical day names in calendar-grid order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// SlotPosition places a schedule item on the weekly grid.
type SlotPosition struct {
	Item   ScheduleItem `json:"item"`
	Top    float64      `json:"top"`    // px from the top of the grid
	Height float64      `json:"height"` // px
	Color  string       `json:"color"`
}
