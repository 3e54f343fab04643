// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novel-reader-api/internal/domain/repository"
	"novel-reader-api/internal/interfaces/http/dto"
	"novel-reader-api/pkg/errors"
	"novel-reader-api/pkg/logger"
)

// ProgressHandler 阅读进度处理器
type ProgressHandler struct {
	progressRepo repository.ProgressRepository
}

// NewProgressHandler 创建阅读进度处理器
func NewProgressHandler(progressRepo repository.ProgressRepository) *ProgressHandler {
	return &ProgressHandler{
		progressRepo: progressRepo,
	}
}

// GetProgress 查询阅读进度
//
// (user_id, novel_id) 无记录时返回 200 与 null 体，不返回 404。
// @Summary 查询阅读进度
// @Description 查询指定用户在指定小说上的阅读进度
// @Tags Progress
// @Produce json
// @Param uid path string true "用户 ID"
// @Param nid path string true "小说 ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/progress/{uid}/{nid} [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()
	userID := dto.BindUserID(c)
	novelID := dto.BindNovelID(c)

	progress, err := h.progressRepo.GetByUserAndNovel(ctx, userID, novelID)
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to get progress", err)
		dto.InternalError(c, "failed to get progress")
		return
	}

	if progress == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToProgressResponse(progress))
}

// UpsertProgress 保存阅读进度
//
// 以 (user_id, novel_id) 为逻辑主键原子插入或覆盖，返回写入后的完整记录。
// @Summary 保存阅读进度
// @Description 插入或覆盖指定用户在指定小说上的阅读进度
// @Tags Progress
// @Accept json
// @Produce json
// @Param body body dto.UpsertProgressRequest true "进度信息"
// @Success 200 {object} dto.ProgressResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/progress [post]
func (h *ProgressHandler) UpsertProgress(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpsertProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.UnprocessableEntity(c, "invalid request body", &dto.ErrorDetail{Details: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		dto.ValidationFailed(c, err)
		return
	}

	saved, err := h.progressRepo.Upsert(ctx, req.ToProgressEntity())
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to upsert progress", err)
		dto.InternalError(c, "failed to upsert progress")
		return
	}

	c.JSON(http.StatusOK, dto.ToProgressResponse(saved))
}
