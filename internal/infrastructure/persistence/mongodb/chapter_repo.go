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

// ChapterRepository 章节仓储实现
type ChapterRepository struct {
	client *Client
}

// NewChapterRepository 创建章节仓储
func NewChapterRepository(client *Client) *ChapterRepository {
	return &ChapterRepository{client: client}
}

// Create 创建章节，返回生成的 ID
// 不校验 novel_id 指向的小说是否存在
func (r *ChapterRepository) Create(ctx context.Context, chapter *entity.Chapter) (id primitive.ObjectID, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.ChapterRepository.Create")
	defer span.End()
	defer observe(entity.Chapter{}.CollectionName(), opInsert, time.Now(), &err)

	// 入库前的最后一道校验
	if err = chapter.Validate(); err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(err, pkgerrors.CodeValidationFailed, "invalid chapter")
	}

	coll, err := r.client.Collection(chapter.CollectionName())
	if err != nil {
		return primitive.NilObjectID, err
	}

	res, err := coll.InsertOne(ctx, chapter)
	if err != nil {
		span.RecordError(err)
		return primitive.NilObjectID, fmt.Errorf("failed to insert chapter: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

// GetByID 根据 ID 获取章节
func (r *ChapterRepository) GetByID(ctx context.Context, id primitive.ObjectID) (chapter *entity.Chapter, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.ChapterRepository.GetByID")
	defer span.End()
	defer observe(entity.Chapter{}.CollectionName(), opFindID, time.Now(), &err)

	coll, err := r.client.Collection(entity.Chapter{}.CollectionName())
	if err != nil {
		return nil, err
	}

	var out entity.Chapter
	if err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}
	return &out, nil
}

// ListByNovel 按章节序号升序获取指定小说的章节
func (r *ChapterRepository) ListByNovel(ctx context.Context, novelID string) (chapters []*entity.Chapter, err error) {
	ctx, span := tracer.Start(ctx, "mongodb.ChapterRepository.ListByNovel")
	defer span.End()
	defer observe(entity.Chapter{}.CollectionName(), opFind, time.Now(), &err)

	coll, err := r.client.Collection(entity.Chapter{}.CollectionName())
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "index", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"novel_id": novelID}, findOpts)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}

	chapters = make([]*entity.Chapter, 0)
	if err = cursor.All(ctx, &chapters); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to decode chapters: %w", err)
	}
	return chapters, nil
}
