package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ConnectRedis returns a Redis client for response caching, or nil when
// Redis is unreachable or unconfigured. Callers must treat a nil client
// as "no cache".
func ConnectRedis(cfg *Config) *redis.Client {
	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Failed to parse Redis URL, running without cache")
			return nil
		}
		opt = parsedOpt
	} else if cfg.RedisAddr != "" {
		opt = &redis.Options{Addr: cfg.RedisAddr}
	} else {
		return nil
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.WithError(err).Warn("Redis connection failed, running without cache")
		return nil
	}

	log.Info("Redis connected")
	return client
}
