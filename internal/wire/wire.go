//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"novel-reader-api/internal/config"
	"novel-reader-api/internal/domain/repository"
	"novel-reader-api/internal/infrastructure/persistence/mongodb"
	"novel-reader-api/internal/interfaces/http/handler"
	"novel-reader-api/internal/interfaces/http/router"
	"novel-reader-api/internal/seed"
)

// DataLayer 数据层依赖容器，供离线命令（如种子导入）使用
type DataLayer struct {
	MongoClient  *mongodb.Client
	NovelRepo    repository.NovelRepository
	ChapterRepo  repository.ChapterRepository
	ProgressRepo repository.ProgressRepository
}

// MongoSet MongoDB 提供者集合
// 客户端是可选的：未配置连接串时仓储以降级模式工作
var MongoSet = wire.NewSet(
	ProvideMongoClientOptional,
	mongodb.NewNovelRepository,
	mongodb.NewChapterRepository,
	mongodb.NewProgressRepository,
	wire.Bind(new(repository.NovelRepository), new(*mongodb.NovelRepository)),
	wire.Bind(new(repository.ChapterRepository), new(*mongodb.ChapterRepository)),
	wire.Bind(new(repository.ProgressRepository), new(*mongodb.ProgressRepository)),
)

// RedisSet Redis 提供者集合
// 缓存与限流都是可选能力，Redis 不可达时整体退化为直连存储
var RedisSet = wire.NewSet(
	ProvideRedisClientOptional,
	ProvideCacheOptional,
	ProvideRateLimiterOptional,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewSystemHandler,
	handler.NewHealthHandler,
	handler.NewNovelHandler,
	handler.NewChapterHandler,
	handler.NewProgressHandler,
	handler.NewSeedHandler,
	seed.NewSeeder,
	wire.Struct(new(router.Handlers), "*"),
	router.NewWithDeps,
)

// InitializeDataLayer 初始化数据层
func InitializeDataLayer(ctx context.Context, cfg *config.Config) (*DataLayer, func(), error) {
	wire.Build(
		MongoSet,
		wire.Struct(new(DataLayer), "*"),
	)
	return nil, nil, nil
}

// InitializeApp 初始化完整应用
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		MongoSet,
		RedisSet,
		RouterSet,
	)
	return nil, nil, nil
}
