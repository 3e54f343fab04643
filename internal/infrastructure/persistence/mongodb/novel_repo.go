// Package mongodb 提供 MongoDB Repository 实现
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"novel-reader-api/internal/domain/entity"
	pkgerrors "novel-reader-api/pkg/errors"
)

// NovelRepository 小说仓储实现
type NovelRepository struct {
	client *Client
}

// NewNovelRepository 创建小说仓储
func NewNovelRepository(client *Client) *NovelRepository {
	return &NovelRepository{client: client}
}

// Create 创建小说，返回生成的 ID
func (r *NovelRepository) Create(ctx context.Context, novel *entity.Novel) (id primitive.ObjectID, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.NovelRepository.Create")
	defer span.End()
	defer observe(entity.Novel{}.CollectionName(), opInsert, time.Now(), &err)

	// 入库前的最后一道校验
	if err = novel.Validate(); err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(err, pkgerrors.CodeValidationFailed, "invalid novel")
	}

	coll, err := r.client.Collection(novel.CollectionName())
	if err != nil {
		return primitive.NilObjectID, err
	}

	res, err := coll.InsertOne(ctx, novel)
	if err != nil {
		span.RecordError(err)
		return primitive.NilObjectID, fmt.Errorf("failed to insert novel: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

// GetByID 根据 ID 获取小说
func (r *NovelRepository) GetByID(ctx context.Context, id primitive.ObjectID) (novel *entity.Novel, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.NovelRepository.GetByID")
	defer span.End()
	defer observe(entity.Novel{}.CollectionName(), opFindID, time.Now(), &err)

	coll, err := r.client.Collection(entity.Novel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	var out entity.Novel
	if err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get novel: %w", err)
	}
	return &out, nil
}

// List 按标题升序获取小说列表
func (r *NovelRepository) List(ctx context.Context, limit int64) (novels []*entity.Novel, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.NovelRepository.List")
	defer span.End()
	defer observe(entity.Novel{}.CollectionName(), opFind, time.Now(), &err)

	coll, err := r.client.Collection(entity.Novel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list novels: %w", err)
	}

	novels = make([]*entity.Novel, 0)
	if err = cursor.All(ctx, &novels); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to decode novels: %w", err)
	}
	return novels, nil
}

// Count 返回小说总数
func (r *NovelRepository) Count(ctx context.Context) (count int64, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.NovelRepository.Count")
	defer span.End()
	defer observe(entity.Novel{}.CollectionName(), opCount, time.Now(), &err)

	coll, err := r.client.Collection(entity.Novel{}.CollectionName())
	if err != nil {
		return 0, err
	}

	count, err = coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to count novels: %w", err)
	}
	return count, nil
}
