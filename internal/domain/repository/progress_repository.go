// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"novel-reader-api/internal/domain/entity"
)

// ProgressRepository 阅读进度仓储接口
type ProgressRepository interface {
	// Upsert 以 (user_id, novel_id) 为逻辑主键原子化写入进度
	// 必须在单次存储调用内完成插入或更新，并返回写入后的完整记录
	Upsert(ctx context.Context, progress *entity.Progress) (*entity.Progress, error)

	// GetByUserAndNovel 获取阅读进度，不存在时返回 (nil, nil)
	GetByUserAndNovel(ctx context.Context, userID, novelID string) (*entity.Progress, error)
}
