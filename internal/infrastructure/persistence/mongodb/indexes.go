// Package mongodb 提供 MongoDB 文档存储访问层实现
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"novel-reader-api/internal/domain/entity"
	"novel-reader-api/pkg/logger"
)

// EnsureIndexes 创建查询所需的二级索引
// 全部为非唯一索引：进度记录的逻辑唯一性由原子 upsert 保证，
// 历史重复数据不会阻塞启动
func (c *Client) EnsureIndexes(ctx context.Context) error {
	if !c.Available() {
		return nil
	}

	ctx, span := tracer.Start(ctx, "mongodb.EnsureIndexes")
	defer span.End()

	indexes := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: entity.Novel{}.CollectionName(),
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "title", Value: 1}},
					Options: options.Index().SetName("idx_novel_title"),
				},
			},
		},
		{
			collection: entity.Chapter{}.CollectionName(),
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "novel_id", Value: 1}, {Key: "index", Value: 1}},
					Options: options.Index().SetName("idx_chapter_novel_index"),
				},
			},
		},
		{
			collection: entity.Progress{}.CollectionName(),
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "novel_id", Value: 1}},
					Options: options.Index().SetName("idx_progress_user_novel"),
				},
			},
		},
	}

	for _, idx := range indexes {
		coll, err := c.Collection(idx.collection)
		if err != nil {
			return err
		}
		if _, err := coll.Indexes().CreateMany(ctx, idx.models); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to create indexes for %s: %w", idx.collection, err)
		}
	}

	logger.Info(ctx, "mongodb indexes ensured")
	return nil
}
