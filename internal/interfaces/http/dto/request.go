// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"novel-reader-api/pkg/errors"
)

// NovelIDRequest 小说 ID 请求
type NovelIDRequest struct {
	NovelID string `uri:"nid" binding:"required"`
}

// ChapterIDRequest 章节 ID 请求
type ChapterIDRequest struct {
	ChapterID string `uri:"cid" binding:"required"`
}

// ProgressKeyRequest 阅读进度逻辑主键请求
type ProgressKeyRequest struct {
	UserID  string `uri:"uid" binding:"required"`
	NovelID string `uri:"nid" binding:"required"`
}

// BindNovelID 从 URI 绑定小说 ID
func BindNovelID(c *gin.Context) string {
	return c.Param("nid")
}

// BindChapterID 从 URI 绑定章节 ID
func BindChapterID(c *gin.Context) string {
	return c.Param("cid")
}

// BindUserID 从 URI 绑定用户 ID
func BindUserID(c *gin.Context) string {
	return c.Param("uid")
}

// ParseObjectID 解析十六进制记录 ID，格式非法时返回 400 业务错误
func ParseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errors.ErrInvalidID
	}
	return id, nil
}
