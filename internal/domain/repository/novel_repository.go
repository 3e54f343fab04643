// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"novel-reader-api/internal/domain/entity"
)

// NovelRepository 小说仓储接口
type NovelRepository interface {
	// Create 创建小说并返回生成的 ID
	Create(ctx context.Context, novel *entity.Novel) (primitive.ObjectID, error)

	// GetByID 根据 ID 获取小说，不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Novel, error)

	// List 按标题升序获取小说列表，limit <= 0 表示不限制
	List(ctx context.Context, limit int64) ([]*entity.Novel, error)

	// Count 返回小说总数
	Count(ctx context.Context) (int64, error)
}
