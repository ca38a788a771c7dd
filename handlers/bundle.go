// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "attendai/database/repository/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo  userRepoPkg.UserRepository
	AuthCache *redis.Client

	// Health
	HealthHandler gin.HandlerFunc

	// Auth endpoints
	SendOTPHandler  gin.HandlerFunc
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// User data endpoints
	GetDataHandler   gin.HandlerFunc
	SaveDataHandler  gin.HandlerFunc
	ClearDataHandler gin.HandlerFunc

	// Schedule endpoints
	ExtractScheduleHandler    gin.HandlerFunc
	CreateScheduleItemHandler gin.HandlerFunc
	UpdateScheduleItemHandler gin.HandlerFunc
	DeleteScheduleItemHandler gin.HandlerFunc
	SlotsForDayHandler        gin.HandlerFunc
	LayoutHandler             gin.HandlerFunc

	// Attendance endpoints
	DayViewHandler         gin.HandlerFunc
	MarkAttendanceHandler  gin.HandlerFunc
	ClearAttendanceHandler gin.HandlerFunc
	StatsHandler           gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the handler types.
func NewHandlerBundle(repo userRepoPkg.UserRepository, authCache *redis.Client, auth *AuthHandler, data *DataHandler) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:  repo,
		AuthCache: authCache,

		HealthHandler: HealthHandler,

		SendOTPHandler:  auth.SendOTPHandler,
		RegisterHandler: auth.RegisterHandler,
		LoginHandler:    auth.LoginHandler,

		GetDataHandler:   data.GetDataHandler,
		SaveDataHandler:  data.SaveDataHandler,
		ClearDataHandler: data.ClearDataHandler,

		ExtractScheduleHandler:    data.ExtractScheduleHandler,
		CreateScheduleItemHandler: data.CreateScheduleItemHandler,
		UpdateScheduleItemHandler: data.UpdateScheduleItemHandler,
		DeleteScheduleItemHandler: data.DeleteScheduleItemHandler,
		SlotsForDayHandler:        data.SlotsForDayHandler,
		LayoutHandler:             data.LayoutHandler,

		DayViewHandler:         data.DayViewHandler,
		MarkAttendanceHandler:  data.MarkAttendanceHandler,
		ClearAttendanceHandler: data.ClearAttendanceHandler,
		StatsHandler:           data.StatsHandler,
	}
}
