// File: services/attendance/session.go
package attendance

import (
	"time"

	"attendai/models"
	"attendai/services/schedule"
)

// Session is the working copy of one user's schedule and ledger. It is built
// from a loaded document, mutated by user actions, and its changed fields are
// handed back to the store. A Session is not safe for concurrent use.
type Session struct {
	UserID string

	schedule []models.ScheduleItem
	records  []models.AttendanceRecord

	scheduleChanged bool
	recordsChanged  bool

	now func() time.Time
}

// NewSession copies data so that changes never alias the caller's slices.
func NewSession(data models.UserData) *Session {
	return &Session{
		UserID:   data.UserID,
		schedule: append([]models.ScheduleItem{}, data.Schedule...),
		records:  append([]models.AttendanceRecord{}, data.Records...),
		now:      time.Now,
	}
}

func (s *Session) Schedule() []models.ScheduleItem {
	return append([]models.ScheduleItem{}, s.schedule...)
}

func (s *Session) Records() []models.AttendanceRecord {
	return append([]models.AttendanceRecord{}, s.records...)
}

// Mark sets the status of a class on a date.
func (s *Session) Mark(scheduleItemID, date string, status models.AttendanceStatus) (models.AttendanceRecord, error) {
	if !status.Valid() {
		return models.AttendanceRecord{}, ErrInvalidStatus
	}
	if _, err := ParseDate(date); err != nil {
		return models.AttendanceRecord{}, err
	}
	if _, ok := schedule.FindItem(s.schedule, scheduleItemID); !ok {
		return models.AttendanceRecord{}, ErrUnknownItem
	}

	var rec models.AttendanceRecord
	s.records, rec = UpsertRecord(s.records, scheduleItemID, date, status, s.now())
	s.recordsChanged = true
	return rec, nil
}

// Clear removes the mark of a class on a date, if there is one.
func (s *Session) Clear(scheduleItemID, date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	if _, ok := FindRecord(s.records, scheduleItemID, date); !ok {
		return nil
	}
	s.records = DeleteRecord(s.records, scheduleItemID, date)
	s.recordsChanged = true
	return nil
}

func (s *Session) Stats() models.OverallStats {
	return ComputeStats(s.records)
}

// ClassesOn lists the classes held on date together with their marks.
func (s *Session) ClassesOn(date time.Time) models.DayView {
	key := date.Format(DateLayout)
	slots := schedule.SlotsForDate(s.schedule, date)

	classes := make([]models.ClassView, 0, len(slots))
	for _, item := range slots {
		view := models.ClassView{Item: item}
		if rec, ok := FindRecord(s.records, item.ID, key); ok {
			rec := rec
			view.Record = &rec
		}
		classes = append(classes, view)
	}

	return models.DayView{
		Date:    key,
		Day:     schedule.DayOf(date),
		Classes: classes,
		Stats:   DailyBreakdown(s.records, key),
	}
}

// ReplaceSchedule swaps in a freshly extracted schedule. Existing records are kept.
func (s *Session) ReplaceSchedule(items []models.ScheduleItem) {
	s.schedule = append([]models.ScheduleItem{}, items...)
	s.scheduleChanged = true
}

// SaveItem validates item, assigns an id when missing and stores it by id.
func (s *Session) SaveItem(item models.ScheduleItem) (models.ScheduleItem, bool, error) {
	if err := schedule.Validate(&item); err != nil {
		return models.ScheduleItem{}, false, err
	}
	if item.ID == "" {
		item.ID = newID()
	}

	var created bool
	s.schedule, created = schedule.SaveItem(s.schedule, item)
	s.scheduleChanged = true
	return item, created, nil
}

// RemoveItem deletes a schedule item. Its records stay in the ledger so
// historical stats are unaffected.
func (s *Session) RemoveItem(id string) error {
	var removed bool
	s.schedule, removed = schedule.RemoveItem(s.schedule, id)
	if !removed {
		return ErrUnknownItem
	}
	s.scheduleChanged = true
	return nil
}

// Changes returns a patch carrying only the collections that were modified.
func (s *Session) Changes() models.UserDataPatch {
	var p models.UserDataPatch
	if s.scheduleChanged {
		items := s.Schedule()
		p.Schedule = &items
	}
	if s.recordsChanged {
		recs := s.Records()
		p.Records = &recs
	}
	return p
}

func (s *Session) Snapshot() models.UserData {
	return models.UserData{
		UserID:   s.UserID,
		Schedule: s.Schedule(),
		Records:  s.Records(),
	}
}
