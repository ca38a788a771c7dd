package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	userDataRepo "attendai/database/repository/userdata"
	"attendai/models"
	"attendai/services/attendance"
	ai "attendai/services/intelligence"
	"attendai/services/userdata"
	"attendai/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type stubExtractor struct {
	items []models.ScheduleItem
	err   error
}

func (s stubExtractor) Extract(context.Context, ai.Image) ([]models.ScheduleItem, error) {
	return append([]models.ScheduleItem{}, s.items...), s.err
}

func newDataRouter(ex ai.Extractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()

	svc := userdata.NewService(userDataRepo.NewMemoryUserDataRepo(), ex, nil, zap.NewNop())
	h := NewDataHandler(svc, 1<<20)

	r := gin.New()
	api := r.Group("/api/data/:userId")
	api.GET("", h.GetDataHandler)
	api.POST("", h.SaveDataHandler)
	api.DELETE("", h.ClearDataHandler)
	api.POST("/schedule/extract", h.ExtractScheduleHandler)
	api.POST("/schedule", h.CreateScheduleItemHandler)
	api.PUT("/schedule/:itemId", h.UpdateScheduleItemHandler)
	api.DELETE("/schedule/:itemId", h.DeleteScheduleItemHandler)
	api.GET("/schedule/day/:day", h.SlotsForDayHandler)
	api.GET("/schedule/layout", h.LayoutHandler)
	api.GET("/day/:date", h.DayViewHandler)
	api.PUT("/attendance", h.MarkAttendanceHandler)
	api.DELETE("/attendance/:scheduleItemId/:date", h.ClearAttendanceHandler)
	api.GET("/stats", h.StatsHandler)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]any](t, w)["error"].(string)
}

func createItem(t *testing.T, r http.Handler, item models.ScheduleItem) models.ScheduleItem {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/data/u1/schedule", item)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.ScheduleItem](t, w)
}

func TestGetData_NewUserIsEmpty(t *testing.T) {
	r := newDataRouter(stubExtractor{})

	w := doJSON(t, r, http.MethodGet, "/api/data/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"schedule":[],"records":[]}`, w.Body.String())
}

func TestSaveData_MergesFieldWise(t *testing.T) {
	r := newDataRouter(stubExtractor{})
	item := createItem(t, r, models.ScheduleItem{Day: "Monday", StartTime: "9:00 AM", EndTime: "10:00 AM", Subject: "Maths"})

	records := []models.AttendanceRecord{{ID: "r1", ScheduleItemID: item.ID, Date: "2024-03-04", Status: models.StatusPresent}}
	w := doJSON(t, r, http.MethodPost, "/api/data/u1", map[string]any{"records": records})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[struct {
		Success bool            `json:"success"`
		Data    models.UserData `json:"data"`
	}](t, w)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Schedule, 1, "schedule was not in the body and must be kept")
	assert.Equal(t, "Maths", resp.Data.Schedule[0].Subject)
	assert.Len(t, resp.Data.Records, 1)

	w = doJSON(t, r, http.MethodPost, "/api/data/u1", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[struct {
		Data models.UserData `json:"data"`
	}](t, w).Data.Records, 1)
}

func TestScheduleItemLifecycle(t *testing.T) {
	r := newDataRouter(stubExtractor{})

	w := doJSON(t, r, http.MethodPost, "/api/data/u1/schedule",
		models.ScheduleItem{Day: "Monday", StartTime: "11:00 AM", EndTime: "10:00 AM", Subject: "Maths"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/data/u1/schedule", models.ScheduleItem{Day: "Monday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	late := createItem(t, r, models.ScheduleItem{Day: "Monday", StartTime: "1:00 PM", EndTime: "2:00 PM", Subject: "Art"})
	early := createItem(t, r, models.ScheduleItem{Day: "mon", StartTime: "9:00 AM", EndTime: "10:00 AM", Subject: "Maths"})
	assert.NotEmpty(t, late.ID)
	assert.Equal(t, "Monday", early.Day)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1/schedule/day/Monday", nil)
	require.Equal(t, http.StatusOK, w.Code)
	slots := decode[[]models.ScheduleItem](t, w)
	require.Len(t, slots, 2)
	assert.Equal(t, "Maths", slots[0].Subject)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1/schedule/day/Someday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	late.Room = "B12"
	w = doJSON(t, r, http.MethodPut, "/api/data/u1/schedule/"+late.ID, late)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "B12", decode[models.ScheduleItem](t, w).Room)

	w = doJSON(t, r, http.MethodPut, "/api/data/u1/schedule/missing", late)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1/schedule/layout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.SlotPosition](t, w), 2)

	w = doJSON(t, r, http.MethodDelete, "/api/data/u1/schedule/"+late.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/data/u1/schedule/"+late.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttendanceFlow(t *testing.T) {
	r := newDataRouter(stubExtractor{})
	item := createItem(t, r, models.ScheduleItem{Day: "Monday", StartTime: "9:00 AM", EndTime: "10:00 AM", Subject: "Maths"})

	mark := func(status models.AttendanceStatus) *httptest.ResponseRecorder {
		return doJSON(t, r, http.MethodPut, "/api/data/u1/attendance",
			models.MarkAttendanceRequest{ScheduleItemID: item.ID, Date: "2024-03-04", Status: status})
	}

	w := mark(models.StatusAbsent)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[models.AttendanceRecord](t, w)

	w = mark(models.StatusPresent)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first.ID, decode[models.AttendanceRecord](t, w).ID, "re-marking keeps the record id")

	assert.Equal(t, http.StatusBadRequest, mark("SKIPPED").Code)

	w = doJSON(t, r, http.MethodPut, "/api/data/u1/attendance",
		models.MarkAttendanceRequest{ScheduleItemID: "nope", Date: "2024-03-04", Status: models.StatusPresent})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1/day/2024-03-04", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[models.DayView](t, w)
	assert.Equal(t, "Monday", view.Day)
	require.Len(t, view.Classes, 1)
	require.NotNil(t, view.Classes[0].Record)
	assert.Equal(t, models.StatusPresent, view.Classes[0].Record.Status)
	assert.Equal(t, 1, view.Stats.Present)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1/day/04-03-2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.OverallStats](t, w)
	assert.Equal(t, 1, stats.TotalClasses)
	assert.Equal(t, 100.0, stats.Percentage)

	w = doJSON(t, r, http.MethodDelete, "/api/data/u1/attendance/"+item.ID+"/2024-03-04", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1/stats", nil)
	assert.Equal(t, 0, decode[models.OverallStats](t, w).TotalClasses)
}

func TestClearData(t *testing.T) {
	r := newDataRouter(stubExtractor{})
	createItem(t, r, models.ScheduleItem{Day: "Friday", StartTime: "9:00 AM", EndTime: "10:00 AM", Subject: "Maths"})

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, "/api/data/u1", nil).Code)

	w := doJSON(t, r, http.MethodGet, "/api/data/u1", nil)
	assert.JSONEq(t, `{"schedule":[],"records":[]}`, w.Body.String())
}

func uploadImage(t *testing.T, r http.Handler, field string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, "timetable.png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/data/u1/schedule/extract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractSchedule(t *testing.T) {
	r := newDataRouter(stubExtractor{items: []models.ScheduleItem{
		{Day: "Tuesday", StartTime: "9:00 AM", EndTime: "10:00 AM", Subject: "Biology"},
	}})

	w := uploadImage(t, r, "image", pngHeader)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[struct {
		Schedule []models.ScheduleItem `json:"schedule"`
	}](t, w)
	require.Len(t, resp.Schedule, 1)
	assert.NotEmpty(t, resp.Schedule[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/data/u1", nil)
	assert.Len(t, decode[models.UserData](t, w).Schedule, 1)
}

func TestExtractSchedule_Rejects(t *testing.T) {
	r := newDataRouter(stubExtractor{})

	w := uploadImage(t, r, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = uploadImage(t, r, "image", []byte("definitely not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = uploadImage(t, r, "image", append(append([]byte{}, pngHeader...), make([]byte, 2<<20)...))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestExtractSchedule_ExtractorFailures(t *testing.T) {
	w := uploadImage(t, newDataRouter(stubExtractor{err: ai.ErrMissingCredentials}), "image", pngHeader)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = uploadImage(t, newDataRouter(stubExtractor{err: ai.ErrMalformedResponse}), "image", pngHeader)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, ai.FailureMessage, errorOf(t, w))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{attendance.ErrInvalidStatus, http.StatusBadRequest},
		{attendance.ErrUnknownItem, http.StatusNotFound},
		{userdata.ErrFetchFailed, http.StatusInternalServerError},
		{ai.ErrEmptyExtraction, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, msg := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.NotEmpty(t, msg)
	}

	_, msg := classify(errors.New("driver: connection reset"))
	assert.Equal(t, "Internal Server Error", msg)
}
