// Package entity 定义领域实体
package entity

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chapter 章节实体
// NovelID 按原样文本存储，不校验所属小说是否存在
type Chapter struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NovelID string             `bson:"novel_id" json:"novel_id"`
	Index   int                `bson:"index" json:"index"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
}

// CollectionName 指定集合名
func (Chapter) CollectionName() string {
	return "chapter"
}

// NewChapter 创建新章节
func NewChapter(novelID string, index int, title, content string) *Chapter {
	return &Chapter{
		NovelID: novelID,
		Index:   index,
		Title:   title,
		Content: content,
	}
}

// Validate 校验实体字段，入库前的最后一道防线
func (c *Chapter) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NovelID, validation.Required),
		validation.Field(&c.Index, validation.Required, validation.Min(1)),
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Content, validation.Required),
	)
}

// WordCount 返回章节内容字数
func (c *Chapter) WordCount() int {
	return len([]rune(c.Content))
}
