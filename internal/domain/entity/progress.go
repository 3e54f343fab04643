// Package entity 定义领域实体
package entity

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress 阅读进度实体
// 逻辑主键为 (UserID, NovelID)，每个用户每本小说只保留一条记录
type Progress struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	NovelID   string             `bson:"novel_id" json:"novel_id"`
	ChapterID string             `bson:"chapter_id" json:"chapter_id"`
	Position  float64            `bson:"position" json:"position"`
}

// CollectionName 指定集合名
func (Progress) CollectionName() string {
	return "progress"
}

// NewProgress 创建新阅读进度
func NewProgress(userID, novelID, chapterID string, position float64) *Progress {
	return &Progress{
		UserID:    userID,
		NovelID:   novelID,
		ChapterID: chapterID,
		Position:  position,
	}
}

// Validate 校验实体字段，位置取值范围为 [0.0, 1.0] 闭区间
func (p *Progress) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.UserID, validation.Required),
		validation.Field(&p.NovelID, validation.Required),
		validation.Field(&p.ChapterID, validation.Required),
		validation.Field(&p.Position, validation.Min(0.0), validation.Max(1.0)),
	)
}

// IsFinished 判断是否已读完
func (p *Progress) IsFinished() bool {
	return p.Position >= 1.0
}
