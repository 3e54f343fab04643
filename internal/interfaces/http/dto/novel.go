// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"novel-reader-api/internal/domain/entity"
)

// CreateNovelRequest 创建小说请求
type CreateNovelRequest struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	CoverURL    *string  `json:"cover_url"`
	Genres      []string `json:"genres"`
}

// Validate 校验创建小说请求
func (r CreateNovelRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.Description, validation.Required),
	)
}

// ToNovelEntity 转换为小说实体
func (r CreateNovelRequest) ToNovelEntity() *entity.Novel {
	return entity.NewNovel(r.Title, r.Author, r.Description, r.CoverURL, r.Genres)
}

// NovelResponse 小说响应
type NovelResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	CoverURL    *string  `json:"cover_url"`
	Genres      []string `json:"genres"`
}

// ToNovelResponse 转换小说实体为响应
func ToNovelResponse(n *entity.Novel) *NovelResponse {
	if n == nil {
		return nil
	}
	genres := n.Genres
	if genres == nil {
		genres = []string{}
	}
	return &NovelResponse{
		ID:          n.ID.Hex(),
		Title:       n.Title,
		Author:      n.Author,
		Description: n.Description,
		CoverURL:    n.CoverURL,
		Genres:      genres,
	}
}

// ToNovelListResponse 转换小说列表，空列表序列化为 [] 而非 null
func ToNovelListResponse(items []*entity.Novel) []*NovelResponse {
	out := make([]*NovelResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToNovelResponse(it))
	}
	return out
}

// SeedResponse 演示数据填充响应
type SeedResponse struct {
	Status string           `json:"status"`
	Novels []*NovelResponse `json:"novels"`
}
