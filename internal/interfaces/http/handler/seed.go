// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novel-reader-api/internal/interfaces/http/dto"
	"novel-reader-api/internal/seed"
	"novel-reader-api/pkg/errors"
	"novel-reader-api/pkg/logger"
)

// SeedHandler 演示数据填充处理器
type SeedHandler struct {
	seeder *seed.Seeder
}

// NewSeedHandler 创建演示数据填充处理器
func NewSeedHandler(seeder *seed.Seeder) *SeedHandler {
	return &SeedHandler{
		seeder: seeder,
	}
}

// Seed 填充演示数据
// @Summary 填充演示数据
// @Description 幂等地写入演示小说与章节，已有数据时返回现存记录
// @Tags System
// @Produce json
// @Success 200 {object} dto.SeedResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.seeder.Run(ctx)
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to seed demo data", err)
		dto.InternalError(c, "failed to seed demo data")
		return
	}

	c.JSON(http.StatusOK, dto.SeedResponse{
		Status: result.Status,
		Novels: dto.ToNovelListResponse(result.Novels),
	})
}
