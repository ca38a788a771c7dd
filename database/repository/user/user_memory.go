package userRepo

import (
	"context"
	"strings"
	"sync"
	"time"

	"attendai/models"
)

// MemoryUserRepo is the in-process UserRepository.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.TokenHash = tokenHash
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}
