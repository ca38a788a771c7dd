package routes

import (
	"time"

	"attendai/config"
	"attendai/handlers"
	"attendai/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/auth")
	{
		api.POST("/send-otp", hb.SendOTPHandler)
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterDataRoutes registers the per-user data endpoints. Every route
// requires a session token whose subject matches :userId.
func RegisterDataRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/data/:userId")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.Use(middleware.RequireOwner())

		api.GET("", hb.GetDataHandler)
		api.POST("", hb.SaveDataHandler)
		api.DELETE("", hb.ClearDataHandler)

		api.POST("/schedule/extract", hb.ExtractScheduleHandler)
		api.POST("/schedule", hb.CreateScheduleItemHandler)
		api.PUT("/schedule/:itemId", hb.UpdateScheduleItemHandler)
		api.DELETE("/schedule/:itemId", hb.DeleteScheduleItemHandler)
		api.GET("/schedule/day/:day", hb.SlotsForDayHandler)
		api.GET("/schedule/layout", hb.LayoutHandler)

		api.GET("/day/:date", hb.DayViewHandler)
		api.PUT("/attendance", hb.MarkAttendanceHandler)
		api.DELETE("/attendance/:scheduleItemId/:date", hb.ClearAttendanceHandler)
		api.GET("/stats", hb.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := config.AllowedOrigins()
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterDataRoutes(r, hb)
}
