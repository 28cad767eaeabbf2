package main

import (
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/config"
	"github.com/KirkDiggler/judgebot/internal/repositories/store"
	boltStore "github.com/KirkDiggler/judgebot/internal/repositories/store/bolt"
	redisStore "github.com/KirkDiggler/judgebot/internal/repositories/store/redis"
	"github.com/redis/go-redis/v9"
)

// openStore opens the configured durable store backend
func openStore(cfg config.StorageConfig) (store.Store, error) {
	switch cfg.Type {
	case config.StorageBolt:
		st, err := boltStore.Open(&boltStore.Config{Path: cfg.Path})
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		st, err := redisStore.NewRedis(&redisStore.Config{
			RedisClient: client,
			KeyPrefix:   cfg.Redis.KeyPrefix,
		})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
