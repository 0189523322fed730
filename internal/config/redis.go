package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis establishes the optional Redis connection used for tally and
// candidate list caching. Returns nil when no address is configured.
func ConnectRedis(cfg *Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		logrus.Info("Redis not configured, response caching disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Infof("✅ Redis connected [%s]", cfg.Redis.Addr)
	return rdb, nil
}
