package utils

import (
	"context"
	"log"
	"time"

	"solarcare/config"

	"github.com/go-redis/redis/v8"
)

// OTPCacheClient stores pending OTP challenges.
var OTPCacheClient *redis.Client

// InitOTPCache initializes the Redis client used for OTP challenges.
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OTPCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (OTP cache): %v", err)
	}
}

// GetOTPCacheClient returns the OTP cache client.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}
