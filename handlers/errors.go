// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"attendai/services/attendance"
	ai "attendai/services/intelligence"
	"attendai/services/schedule"
	"attendai/services/user"
	"attendai/services/userdata"
	"attendai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto a status and the {"error": ...} body.
func respondError(c *gin.Context, err error) {
	status, msg := classify(err)
	logger := getLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	} else {
		logger.Debug("Request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func classify(err error) (int, string) {
	var verr *schedule.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()

	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, userdata.ErrInvalidDay),
		errors.Is(err, ai.ErrNoImage),
		errors.Is(err, ai.ErrNotAnImage),
		errors.Is(err, user.ErrInvalidOTP):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, ai.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()

	case errors.Is(err, attendance.ErrUnknownItem):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict, err.Error()

	case errors.Is(err, ai.ErrMissingCredentials):
		return http.StatusServiceUnavailable, "Timetable scanning is not available right now"

	case errors.Is(err, ai.ErrExtractionFailed),
		errors.Is(err, ai.ErrEmptyExtraction),
		errors.Is(err, ai.ErrMalformedResponse):
		return http.StatusBadGateway, ai.FailureMessage

	case errors.Is(err, userdata.ErrFetchFailed):
		return http.StatusInternalServerError, userdata.ErrFetchFailed.Error()

	case errors.Is(err, userdata.ErrSaveFailed):
		return http.StatusInternalServerError, userdata.ErrSaveFailed.Error()
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

// badRequest reports a body that failed to bind.
func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
