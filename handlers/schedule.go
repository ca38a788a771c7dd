// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"attendai/models"
	ai "attendai/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractScheduleHandler reads the multipart "image" field, extracts the
// timetable and replaces the stored schedule.
func (h *DataHandler) ExtractScheduleHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, ai.ErrNoImage)
		return
	}

	img, err := ai.ReadUpload(fileHeader, h.maxUploadBytes)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Timetable upload received",
		zap.String("userID", c.Param("userId")),
		zap.String("type", img.MIMEType),
		zap.Int("bytes", len(img.Data)))

	items, err := h.svc.ImportSchedule(c.Request.Context(), c.Param("userId"), img)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": items})
}

func (h *DataHandler) CreateScheduleItemHandler(c *gin.Context) {
	var item models.ScheduleItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	saved, err := h.svc.CreateScheduleItem(c.Request.Context(), c.Param("userId"), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *DataHandler) UpdateScheduleItemHandler(c *gin.Context) {
	var item models.ScheduleItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	saved, err := h.svc.UpdateScheduleItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *DataHandler) DeleteScheduleItemHandler(c *gin.Context) {
	if err := h.svc.DeleteScheduleItem(c.Request.Context(), c.Param("userId"), c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DataHandler) SlotsForDayHandler(c *gin.Context) {
	slots, err := h.svc.SlotsForDay(c.Request.Context(), c.Param("userId"), c.Param("day"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *DataHandler) LayoutHandler(c *gin.Context) {
	layout, err := h.svc.Layout(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, layout)
}
