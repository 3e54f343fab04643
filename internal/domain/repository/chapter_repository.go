// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"novel-reader-api/internal/domain/entity"
)

// ChapterRepository 章节仓储接口
type ChapterRepository interface {
	// Create 创建章节并返回生成的 ID
	Create(ctx context.Context, chapter *entity.Chapter) (primitive.ObjectID, error)

	// GetByID 根据 ID 获取章节，不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Chapter, error)

	// ListByNovel 按章节序号升序获取指定小说的章节
	// novelID 为原样文本过滤条件，未知小说返回空列表
	ListByNovel(ctx context.Context, novelID string) ([]*entity.Chapter, error)
}
