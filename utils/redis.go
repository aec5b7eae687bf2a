// File: utils/redis.go
package utils

import (
	"context"
	"log"
	"time"

	"cuidarte/config"

	"github.com/go-redis/redis/v8"
)

// QueueClient is the Redis client for the notification queue broker.
var QueueClient *redis.Client

// InitRedis initializes the Redis client backing the notification queue
// (same instance asynq connects to; this client is used for health probes).
func InitRedis() {
	QueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := QueueClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Queue): %v", err)
	}
}

// GetQueueClient returns the Redis client for the notification queue.
func GetQueueClient() *redis.Client {
	if QueueClient == nil {
		InitRedis()
	}
	return QueueClient
}
