package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// InitAsynq initializes Asynq client only if Redis is available
func InitAsynq(redisAddr string, redisUp bool) *asynq.Client {
	if !redisUp || redisAddr == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	c := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	log.Println("✅ Asynq Client initialized successfully")
	return c
}
