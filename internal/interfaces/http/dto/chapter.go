// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"novel-reader-api/internal/domain/entity"
)

// CreateChapterRequest 创建章节请求，novel_id 来自路径参数
type CreateChapterRequest struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate 校验创建章节请求
func (r CreateChapterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Index, validation.Required, validation.Min(1)),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

// ToChapterEntity 转换为章节实体
func (r CreateChapterRequest) ToChapterEntity(novelID string) *entity.Chapter {
	return entity.NewChapter(novelID, r.Index, r.Title, r.Content)
}

// ChapterResponse 章节响应
type ChapterResponse struct {
	ID      string `json:"id"`
	NovelID string `json:"novel_id"`
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ToChapterResponse 转换章节实体为响应
func ToChapterResponse(ch *entity.Chapter) *ChapterResponse {
	if ch == nil {
		return nil
	}
	return &ChapterResponse{
		ID:      ch.ID.Hex(),
		NovelID: ch.NovelID,
		Index:   ch.Index,
		Title:   ch.Title,
		Content: ch.Content,
	}
}

// ToChapterListResponse 转换章节列表，空列表序列化为 [] 而非 null
func ToChapterListResponse(items []*entity.Chapter) []*ChapterResponse {
	out := make([]*ChapterResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToChapterResponse(it))
	}
	return out
}
