// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tripforge/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client backing planner sessions.
var SessionCacheClient *redis.Client

// InitRedis initializes the Redis client for the planner session store.
func InitRedis() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for planner sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitRedis()
	}
	return SessionCacheClient
}
