package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(queueClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisOK := false
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := queueClient.Ping(pingCtx).Err(); err == nil {
				redisOK = true
			}
			cancel()

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisOK,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
