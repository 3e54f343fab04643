// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"novel-reader-api/internal/domain/entity"
)

// UpsertProgressRequest 保存阅读进度请求
//
// Position 使用指针以区分「未提交」与合法的 0.0。
type UpsertProgressRequest struct {
	UserID    string   `json:"user_id"`
	NovelID   string   `json:"novel_id"`
	ChapterID string   `json:"chapter_id"`
	Position  *float64 `json:"position"`
}

// Validate 校验保存阅读进度请求
func (r UpsertProgressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.NovelID, validation.Required),
		validation.Field(&r.ChapterID, validation.Required),
		validation.Field(&r.Position, validation.NotNil, validation.Min(0.0), validation.Max(1.0)),
	)
}

// ToProgressEntity 转换为进度实体
func (r UpsertProgressRequest) ToProgressEntity() *entity.Progress {
	var pos float64
	if r.Position != nil {
		pos = *r.Position
	}
	return entity.NewProgress(r.UserID, r.NovelID, r.ChapterID, pos)
}

// ProgressResponse 阅读进度响应
type ProgressResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	NovelID   string  `json:"novel_id"`
	ChapterID string  `json:"chapter_id"`
	Position  float64 `json:"position"`
}

// ToProgressResponse 转换进度实体为响应
func ToProgressResponse(p *entity.Progress) *ProgressResponse {
	if p == nil {
		return nil
	}
	return &ProgressResponse{
		ID:        p.ID.Hex(),
		UserID:    p.UserID,
		NovelID:   p.NovelID,
		ChapterID: p.ChapterID,
		Position:  p.Position,
	}
}
