// File: services/userdata/service.go
package userdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	userDataRepo "attendai/database/repository/userdata"
	"attendai/models"
	"attendai/services/attendance"
	ai "attendai/services/intelligence"
	"attendai/services/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFetchFailed = errors.New("Failed to fetch data")
	ErrSaveFailed  = errors.New("Failed to save data")
	ErrInvalidDay  = errors.New("unknown day of week")
)

// Service runs every per-user operation as load, change one field, persist.
type Service struct {
	repo      userDataRepo.UserDataRepository
	extractor ai.Extractor
	archive   ai.ImageArchive
	logger    *zap.Logger
	layout    schedule.LayoutOptions
}

// NewService wires the service. archive may be nil.
func NewService(repo userDataRepo.UserDataRepository, extractor ai.Extractor, archive ai.ImageArchive, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		extractor: extractor,
		archive:   archive,
		logger:    logger,
		layout:    schedule.DefaultLayout,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (models.UserData, error) {
	data, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load user data", zap.String("userID", userID), zap.Error(err))
		return models.UserData{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return data, nil
}

// Save merges patch into the stored document. Omitted fields keep their value.
func (s *Service) Save(ctx context.Context, userID string, patch models.UserDataPatch) (models.UserData, error) {
	data, err := s.repo.Merge(ctx, userID, patch)
	if err != nil {
		s.logger.Error("Failed to save user data", zap.String("userID", userID), zap.Error(err))
		return models.UserData{}, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return data, nil
}

func (s *Service) ClearAll(ctx context.Context, userID string) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		s.logger.Error("Failed to clear user data", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, userID string) (*attendance.Session, error) {
	data, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	data.UserID = userID
	return attendance.NewSession(data), nil
}

// commit persists only the collections the session changed.
func (s *Service) commit(ctx context.Context, sess *attendance.Session) error {
	patch := sess.Changes()
	if patch.Empty() {
		return nil
	}
	_, err := s.Save(ctx, sess.UserID, patch)
	return err
}

func (s *Service) MarkAttendance(ctx context.Context, userID string, req models.MarkAttendanceRequest) (models.AttendanceRecord, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	rec, err := sess.Mark(req.ScheduleItemID, req.Date, req.Status)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	if err := s.commit(ctx, sess); err != nil {
		return models.AttendanceRecord{}, err
	}
	return rec, nil
}

func (s *Service) ClearAttendance(ctx context.Context, userID, scheduleItemID, date string) error {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if err := sess.Clear(scheduleItemID, date); err != nil {
		return err
	}
	return s.commit(ctx, sess)
}

func (s *Service) Stats(ctx context.Context, userID string) (models.OverallStats, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return models.OverallStats{}, err
	}
	return sess.Stats(), nil
}

// DayView lists the classes of one calendar date with their marks.
func (s *Service) DayView(ctx context.Context, userID, date string) (models.DayView, error) {
	day, err := attendance.ParseDate(date)
	if err != nil {
		return models.DayView{}, err
	}
	sess, err := s.load(ctx, userID)
	if err != nil {
		return models.DayView{}, err
	}
	return sess.ClassesOn(day), nil
}

func (s *Service) SlotsForDay(ctx context.Context, userID, day string) ([]models.ScheduleItem, error) {
	canonical, ok := schedule.NormalizeDay(day)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return schedule.SlotsForDay(sess.Schedule(), canonical), nil
}

func (s *Service) Layout(ctx context.Context, userID string) ([]models.SlotPosition, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return schedule.Layout(sess.Schedule(), s.layout), nil
}

// CreateScheduleItem always stores item under a fresh id.
func (s *Service) CreateScheduleItem(ctx context.Context, userID string, item models.ScheduleItem) (models.ScheduleItem, error) {
	item.ID = ""
	return s.saveItem(ctx, userID, item)
}

// UpdateScheduleItem overwrites an existing item.
func (s *Service) UpdateScheduleItem(ctx context.Context, userID, itemID string, item models.ScheduleItem) (models.ScheduleItem, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return models.ScheduleItem{}, err
	}
	if _, ok := schedule.FindItem(sess.Schedule(), itemID); !ok {
		return models.ScheduleItem{}, attendance.ErrUnknownItem
	}
	item.ID = itemID
	return s.saveWith(ctx, sess, item)
}

func (s *Service) saveItem(ctx context.Context, userID string, item models.ScheduleItem) (models.ScheduleItem, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return models.ScheduleItem{}, err
	}
	return s.saveWith(ctx, sess, item)
}

func (s *Service) saveWith(ctx context.Context, sess *attendance.Session, item models.ScheduleItem) (models.ScheduleItem, error) {
	saved, _, err := sess.SaveItem(item)
	if err != nil {
		return models.ScheduleItem{}, err
	}
	if err := s.commit(ctx, sess); err != nil {
		return models.ScheduleItem{}, err
	}
	return saved, nil
}

// DeleteScheduleItem removes an item. Its attendance records are kept.
func (s *Service) DeleteScheduleItem(ctx context.Context, userID, itemID string) error {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if err := sess.RemoveItem(itemID); err != nil {
		return err
	}
	return s.commit(ctx, sess)
}

// ImportSchedule extracts a schedule from a timetable photo and replaces the
// stored schedule with it. Records are left alone.
func (s *Service) ImportSchedule(ctx context.Context, userID string, img ai.Image) ([]models.ScheduleItem, error) {
	started := time.Now()
	items, err := s.extractor.Extract(ctx, img)
	if err != nil {
		s.logger.Warn("Timetable extraction failed", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	for i := range items {
		items[i].ID = uuid.New().String()
	}
	s.logger.Info("Timetable extracted",
		zap.String("userID", userID),
		zap.Int("classes", len(items)),
		zap.Duration("took", time.Since(started)))

	if s.archive != nil {
		if id, err := s.archive.Store(ctx, userID, img); err != nil {
			s.logger.Warn("Failed to archive timetable image", zap.String("userID", userID), zap.Error(err))
		} else {
			s.logger.Debug("Timetable image archived", zap.String("publicID", id))
		}
	}

	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.ReplaceSchedule(items)
	if err := s.commit(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Schedule(), nil
}
