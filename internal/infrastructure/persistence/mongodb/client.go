// Package mongodb 提供 MongoDB 文档存储访问层实现
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"

	"novel-reader-api/internal/config"
	pkgerrors "novel-reader-api/pkg/errors"
	"novel-reader-api/pkg/logger"
	"novel-reader-api/pkg/metrics"
)

var tracer = otel.Tracer("mongodb")

// 存储操作名，用于指标上报
const (
	opInsert = "insert"
	opFind   = "find"
	opFindID = "find_one"
	opCount  = "count"
	opUpsert = "upsert"
)

// Client MongoDB 客户端
// URI 未配置时客户端为 nil，nil 客户端上的集合访问返回 ErrDatabaseUnavailable，
// 服务在该状态下照常启动，由诊断接口暴露存储层状态
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	config *config.MongoConfig
}

// NewClient 创建 MongoDB 客户端
// 连接是惰性的：服务器不可达只在启动日志中告警，后续操作按瞬时错误处理
func NewClient(ctx context.Context, cfg *config.MongoConfig) (*Client, error) {
	if cfg.URI == "" {
		return nil, pkgerrors.ErrDatabaseUnavailable
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	// 启动时探测连通性
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ServerSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn(ctx, "mongodb not reachable at startup", "error", err.Error())
	} else {
		logger.Info(ctx, "mongodb connected", "database", cfg.Database)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
		config: cfg,
	}, nil
}

// Available 报告存储层是否已初始化
func (c *Client) Available() bool {
	return c != nil && c.db != nil
}

// Collection 获取集合句柄，未初始化时返回 ErrDatabaseUnavailable
func (c *Client) Collection(name string) (*mongo.Collection, error) {
	if !c.Available() {
		return nil, pkgerrors.ErrDatabaseUnavailable
	}
	return c.db.Collection(name), nil
}

// DatabaseName 返回数据库名，未初始化时为空串
func (c *Client) DatabaseName() string {
	if c == nil || c.config == nil {
		return ""
	}
	return c.config.Database
}

// Ping 检查数据库连接
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "mongodb.Ping")
	defer span.End()

	if c == nil || c.client == nil {
		return pkgerrors.ErrDatabaseUnavailable
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// ListCollectionNames 列出数据库中的集合名，诊断接口使用
func (c *Client) ListCollectionNames(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "mongodb.ListCollectionNames")
	defer span.End()

	if !c.Available() {
		return nil, pkgerrors.ErrDatabaseUnavailable
	}

	names, err := c.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Close 断开客户端连接
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// observe 上报单次存储操作指标，配合 defer 在方法入口处调用
func observe(collection, operation string, start time.Time, errp *error) {
	status := "success"
	if errp != nil && *errp != nil {
		status = "error"
	}
	metrics.StoreOperationsTotal.WithLabelValues(collection, operation, status).Inc()
	metrics.StoreOperationDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}
