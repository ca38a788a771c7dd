package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Pinger is anything whose liveness can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Storage   bool      `json:"storage"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Storage: true}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth probes every dependency once and stores the result.
func CheckHealth(ctx context.Context, redisClients []*redis.Client, storage Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	redisHealth := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
	}

	status := HealthStatus{
		Storage:   storage == nil || storage.Ping(ctx) == nil,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, redisClients []*redis.Client, storage Pinger) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		CheckHealth(ctx, redisClients, storage)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClients, storage)
			}
		}
	}()
}
