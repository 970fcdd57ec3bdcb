package database

import (
	"context"
	"time"

	"oneclickticket/config"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// Redis is nil when no server is reachable; callers fall back to the store.
var Redis *redis.Client

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Info("REDIS_ADDR not set, option cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorf("redis ping %s failed, option cache disabled: %v", addr, err)
		_ = client.Close()
		return
	}
	log.Infof("Connected to redis at %s", addr)
	Redis = client
}
