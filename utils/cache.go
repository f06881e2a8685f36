// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"pickbook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (area lists, dashboard reads).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// SessionCacheClient holds in-progress booking sessions.
	SessionCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func pingOrDie(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	pingOrDie(CacheClient, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	pingOrDie(AuthCacheClient, "Auth Cache")
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitSessionCache initializes the Redis client for booking sessions.
func InitSessionCache() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	pingOrDie(SessionCacheClient, "Booking Session")
}

// GetBookingCacheClient returns the Redis client for booking sessions.
func GetBookingCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
