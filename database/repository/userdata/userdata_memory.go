package userDataRepo

import (
	"context"
	"sync"
	"time"

	"attendai/models"
)

// MemoryUserDataRepo keeps documents in process. Used with STORAGE_DRIVER=memory and in tests.
type MemoryUserDataRepo struct {
	mu   sync.RWMutex
	docs map[string]models.UserData
}

func NewMemoryUserDataRepo() *MemoryUserDataRepo {
	return &MemoryUserDataRepo{docs: make(map[string]models.UserData)}
}

func clone(d models.UserData) models.UserData {
	d.Schedule = append([]models.ScheduleItem{}, d.Schedule...)
	d.Records = append([]models.AttendanceRecord{}, d.Records...)
	return d
}

func (r *MemoryUserDataRepo) Get(_ context.Context, userID string) (models.UserData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.docs[userID]
	if !ok {
		data = models.UserData{UserID: userID}
	}
	return clone(data), nil
}

func (r *MemoryUserDataRepo) Merge(_ context.Context, userID string, patch models.UserDataPatch) (models.UserData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.docs[userID]
	if !ok {
		data = models.UserData{UserID: userID}
	}
	if patch.Schedule != nil {
		data.Schedule = append([]models.ScheduleItem{}, *patch.Schedule...)
	}
	if patch.Records != nil {
		data.Records = append([]models.AttendanceRecord{}, *patch.Records...)
	}
	if !patch.Empty() {
		data.UpdatedAt = time.Now()
		r.docs[userID] = data
	}
	return clone(data), nil
}

func (r *MemoryUserDataRepo) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, userID)
	return nil
}

func (r *MemoryUserDataRepo) Ping(context.Context) error { return nil }
