package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient REDIS_URL 为空时返回 nil，表示不启用缓存
func NewRedisClient(env *Env, logger *zap.Logger) (*redis.Client, error) {
	if env.RedisURL == "" {
		logger.Info("REDIS_URL not set, pick cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(env.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("connected to Redis", zap.String("addr", opts.Addr))
	return rdb, nil
}
