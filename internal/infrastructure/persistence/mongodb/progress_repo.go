// Package mongodb 提供 MongoDB Repository 实现
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"novel-reader-api/internal/domain/entity"
	pkgerrors "novel-reader-api/pkg/errors"
)

// ProgressRepository 阅读进度仓储实现
type ProgressRepository struct {
	client *Client
}

// NewProgressRepository 创建阅读进度仓储
func NewProgressRepository(client *Client) *ProgressRepository {
	return &ProgressRepository{client: client}
}

// Upsert 以 (user_id, novel_id) 为键原子化写入阅读进度
// 单次 FindOneAndUpdate 完成插入或更新，并发写入时后写者胜出，
// 不存在读取-修改-写入窗口，每个键最多产生一条记录
func (r *ProgressRepository) Upsert(ctx context.Context, progress *entity.Progress) (saved *entity.Progress, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.ProgressRepository.Upsert")
	defer span.End()
	defer observe(entity.Progress{}.CollectionName(), opUpsert, time.Now(), &err)

	// 入库前的最后一道校验
	if err = progress.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeValidationFailed, "invalid progress")
	}

	coll, err := r.client.Collection(progress.CollectionName())
	if err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": progress.UserID, "novel_id": progress.NovelID}
	update := bson.M{"$set": bson.M{
		"user_id":    progress.UserID,
		"novel_id":   progress.NovelID,
		"chapter_id": progress.ChapterID,
		"position":   progress.Position,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out entity.Progress
	if err = coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}
	return &out, nil
}

// GetByUserAndNovel 获取用户在某本小说上的阅读进度
func (r *ProgressRepository) GetByUserAndNovel(ctx context.Context, userID, novelID string) (progress *entity.Progress, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.ProgressRepository.GetByUserAndNovel")
	defer span.End()
	defer observe(entity.Progress{}.CollectionName(), opFindID, time.Now(), &err)

	coll, err := r.client.Collection(entity.Progress{}.CollectionName())
	if err != nil {
		return nil, err
	}

	var out entity.Progress
	filter := bson.M{"user_id": userID, "novel_id": novelID}
	if err = coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return &out, nil
}
