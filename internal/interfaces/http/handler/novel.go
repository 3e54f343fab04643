// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novel-reader-api/internal/config"
	"novel-reader-api/internal/domain/repository"
	"novel-reader-api/internal/infrastructure/persistence/redis"
	"novel-reader-api/internal/interfaces/http/dto"
	"novel-reader-api/pkg/errors"
	"novel-reader-api/pkg/logger"
)

// NovelHandler 小说处理器
type NovelHandler struct {
	novelRepo repository.NovelRepository
	cache     *redis.Cache
	cfg       *config.Config
}

// NewNovelHandler 创建小说处理器
func NewNovelHandler(novelRepo repository.NovelRepository, cache *redis.Cache, cfg *config.Config) *NovelHandler {
	return &NovelHandler{
		novelRepo: novelRepo,
		cache:     cache,
		cfg:       cfg,
	}
}

// ListNovels 获取小说列表
// @Summary 获取小说列表
// @Description 获取全部小说，按标题升序排列
// @Tags Novels
// @Produce json
// @Success 200 {array} dto.NovelResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/novels [get]
func (h *NovelHandler) ListNovels(c *gin.Context) {
	ctx := c.Request.Context()

	novels, err := h.novelRepo.List(ctx, 0)
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to list novels", err)
		dto.InternalError(c, "failed to list novels")
		return
	}

	c.JSON(http.StatusOK, dto.ToNovelListResponse(novels))
}

// CreateNovel 创建小说
// @Summary 创建小说
// @Description 创建新的小说并返回其 ID
// @Tags Novels
// @Accept json
// @Produce json
// @Param body body dto.CreateNovelRequest true "小说信息"
// @Success 200 {object} dto.CreateResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/novels [post]
func (h *NovelHandler) CreateNovel(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateNovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.UnprocessableEntity(c, "invalid request body", &dto.ErrorDetail{Details: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		dto.ValidationFailed(c, err)
		return
	}

	id, err := h.novelRepo.Create(ctx, req.ToNovelEntity())
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to create novel", err)
		dto.InternalError(c, "failed to create novel")
		return
	}

	c.JSON(http.StatusOK, dto.CreateResponse{ID: id.Hex()})
}

// GetNovel 获取小说详情
//
// 小说创建后不可变，详情走读穿透缓存；未命中回源并回填。
// @Summary 获取小说详情
// @Description 获取指定小说的详细信息
// @Tags Novels
// @Produce json
// @Param nid path string true "小说 ID"
// @Success 200 {object} dto.NovelResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/novels/{nid} [get]
func (h *NovelHandler) GetNovel(c *gin.Context) {
	ctx := c.Request.Context()
	raw := dto.BindNovelID(c)

	id, err := dto.ParseObjectID(raw)
	if err != nil {
		dto.FromError(c, err)
		return
	}

	payload, err := h.cache.GetOrLoadSafe(ctx, redis.BuildNovelKey(raw), h.cfg.Cache.ReadThrough.TTL, func() (interface{}, error) {
		novel, err := h.novelRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if novel == nil {
			return nil, errors.ErrNovelNotFound
		}
		return dto.ToNovelResponse(novel), nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to get novel", err)
		dto.InternalError(c, "failed to get novel")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
