// Package entity 定义领域实体
package entity

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Novel 小说实体
type Novel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"`
	Description string             `bson:"description" json:"description"`
	CoverURL    *string            `bson:"cover_url" json:"cover_url"`
	Genres      []string           `bson:"genres" json:"genres"`
}

// CollectionName 指定集合名
func (Novel) CollectionName() string {
	return "novel"
}

// NewNovel 创建新小说，genres 缺省时落为空列表而非 null
func NewNovel(title, author, description string, coverURL *string, genres []string) *Novel {
	if genres == nil {
		genres = []string{}
	}
	return &Novel{
		Title:       title,
		Author:      author,
		Description: description,
		CoverURL:    coverURL,
		Genres:      genres,
	}
}

// Validate 校验实体字段，入库前的最后一道防线
func (n *Novel) Validate() error {
	return validation.ValidateStruct(n,
		validation.Field(&n.Title, validation.Required),
		validation.Field(&n.Author, validation.Required),
		validation.Field(&n.Description, validation.Required),
	)
}

// HasCover 判断是否设置了封面
func (n *Novel) HasCover() bool {
	return n.CoverURL != nil && *n.CoverURL != ""
}
