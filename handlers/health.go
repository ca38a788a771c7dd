package handlers

import (
	"net/http"

	"attendai/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency probe.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Storage {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": "ok", "message": "Hi, I'm AttendAI", "dependencies": status})
}
