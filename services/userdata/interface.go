package userdata

import (
	"context"

	"attendai/models"
	ai "attendai/services/intelligence"
)

// UserDataService is everything the HTTP layer needs for one user's data.
type UserDataService interface {
	Get(ctx context.Context, userID string) (models.UserData, error)
	Save(ctx context.Context, userID string, patch models.UserDataPatch) (models.UserData, error)
	ClearAll(ctx context.Context, userID string) error

	MarkAttendance(ctx context.Context, userID string, req models.MarkAttendanceRequest) (models.AttendanceRecord, error)
	ClearAttendance(ctx context.Context, userID, scheduleItemID, date string) error
	Stats(ctx context.Context, userID string) (models.OverallStats, error)
	DayView(ctx context.Context, userID, date string) (models.DayView, error)

	SlotsForDay(ctx context.Context, userID, day string) ([]models.ScheduleItem, error)
	Layout(ctx context.Context, userID string) ([]models.SlotPosition, error)
	CreateScheduleItem(ctx context.Context, userID string, item models.ScheduleItem) (models.ScheduleItem, error)
	UpdateScheduleItem(ctx context.Context, userID, itemID string, item models.ScheduleItem) (models.ScheduleItem, error)
	DeleteScheduleItem(ctx context.Context, userID, itemID string) error
	ImportSchedule(ctx context.Context, userID string, img ai.Image) ([]models.ScheduleItem, error)
}

var _ UserDataService = (*Service)(nil)
