package wire

import (
	"context"
	"errors"

	"novel-reader-api/internal/config"
	"novel-reader-api/internal/infrastructure/persistence/mongodb"
	"novel-reader-api/internal/infrastructure/persistence/redis"
	pkgerrors "novel-reader-api/pkg/errors"
	"novel-reader-api/pkg/logger"
)

// ProvideMongoClientOptional 提供可选的 MongoDB 客户端
// 未配置连接串时返回 nil 客户端，读写接口返回存储未初始化错误，
// 诊断与健康检查接口仍然可用
func ProvideMongoClientOptional(ctx context.Context, cfg *config.Config) (*mongodb.Client, func(), error) {
	client, err := mongodb.NewClient(ctx, &cfg.Database.Mongo)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrDatabaseUnavailable) {
			logger.Warn(ctx, "mongodb not configured, running without persistent storage")
			return nil, func() {}, nil
		}
		return nil, nil, err
	}

	// 索引缺失不阻塞启动，连接恢复后可通过重启或种子命令补建
	if err := client.EnsureIndexes(ctx); err != nil {
		logger.Warn(ctx, "failed to ensure indexes", "error", err.Error())
	}

	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Error(context.Background(), "failed to close mongodb client", err)
		}
	}
	return client, cleanup, nil
}

// ProvideRedisClientOptional 提供可选的 Redis 客户端
// 未启用或连接失败时返回 nil，缓存与限流随之停用
func ProvideRedisClientOptional(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	if !cfg.Cache.Redis.Enabled {
		return nil, func() {}
	}

	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Warn(ctx, "redis not available, cache and rate limiting disabled", "error", err.Error())
		return nil, func() {}
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error(context.Background(), "failed to close redis client", err)
		}
	}
	return client, cleanup
}

// ProvideCacheOptional 提供读穿透缓存，未启用时为 nil
func ProvideCacheOptional(cfg *config.Config, client *redis.Client) *redis.Cache {
	if client == nil || !cfg.Cache.ReadThrough.Enabled {
		return nil
	}
	return redis.NewCache(client)
}

// ProvideRateLimiterOptional 提供限流器，未启用时为 nil
func ProvideRateLimiterOptional(cfg *config.Config, client *redis.Client) *redis.RateLimiter {
	if client == nil || !cfg.Security.RateLimit.Enabled {
		return nil
	}
	return redis.NewRateLimiter(client)
}
