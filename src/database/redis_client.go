package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil when REDIS_URI is empty or unreachable; callers fall
// back to in-memory stores (dev mode).
func InitRedis(addr string) *redis.Client {
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set. Using in-memory caches.")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Failed to connect Redis, using in-memory caches:", err)
		_ = client.Close()
		return nil
	}

	log.Println("✅ Redis connected successfully")
	return client
}
