// File: handlers/data.go
package handlers

import (
	"net/http"

	"attendai/models"
	"attendai/services/userdata"

	"github.com/gin-gonic/gin"
)

// DataHandler serves /api/data/:userId and everything below it.
type DataHandler struct {
	svc            userdata.UserDataService
	maxUploadBytes int64
}

func NewDataHandler(svc userdata.UserDataService, maxUploadBytes int64) *DataHandler {
	return &DataHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// GetDataHandler returns {schedule, records}; both are empty for a new user.
func (h *DataHandler) GetDataHandler(c *gin.Context) {
	data, err := h.svc.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// SaveDataHandler merges the body field by field: an omitted field keeps the stored value.
func (h *DataHandler) SaveDataHandler(c *gin.Context) {
	var patch models.UserDataPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	data, err := h.svc.Save(c.Request.Context(), c.Param("userId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *DataHandler) ClearDataHandler(c *gin.Context) {
	if err := h.svc.ClearAll(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DataHandler) StatsHandler(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DataHandler) DayViewHandler(c *gin.Context) {
	view, err := h.svc.DayView(c.Request.Context(), c.Param("userId"), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DataHandler) MarkAttendanceHandler(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	rec, err := h.svc.MarkAttendance(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *DataHandler) ClearAttendanceHandler(c *gin.Context) {
	err := h.svc.ClearAttendance(c.Request.Context(), c.Param("userId"), c.Param("scheduleItemId"), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
