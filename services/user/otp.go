package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"attendai/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisOTPStore keeps codes under otp:<email> with a TTL.
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func (s *RedisOTPStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.client.Set(ctx, utils.OTPPrefix+email, code, ttl).Err()
}

func (s *RedisOTPStore) Consume(ctx context.Context, email, code string) error {
	key := utils.OTPPrefix + email
	stored, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrInvalidOTP
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrInvalidOTP
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}

type memoryOTP struct {
	code    string
	expires time.Time
}

// MemoryOTPStore is the in-process OTPStore.
type MemoryOTPStore struct {
	mu    sync.Mutex
	codes map[string]memoryOTP
	now   func() time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{codes: make(map[string]memoryOTP), now: time.Now}
}

func (s *MemoryOTPStore) Save(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = memoryOTP{code: code, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Consume(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	otp, ok := s.codes[email]
	if !ok || s.now().After(otp.expires) || subtle.ConstantTimeCompare([]byte(otp.code), []byte(code)) != 1 {
		return ErrInvalidOTP
	}
	delete(s.codes, email)
	return nil
}
