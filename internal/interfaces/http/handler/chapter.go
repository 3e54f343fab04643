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

// ChapterHandler 章节处理器
type ChapterHandler struct {
	chapterRepo repository.ChapterRepository
	cache       *redis.Cache
	cfg         *config.Config
}

// NewChapterHandler 创建章节处理器
func NewChapterHandler(chapterRepo repository.ChapterRepository, cache *redis.Cache, cfg *config.Config) *ChapterHandler {
	return &ChapterHandler{
		chapterRepo: chapterRepo,
		cache:       cache,
		cfg:         cfg,
	}
}

// ListChapters 获取章节列表
//
// novel_id 按原样文本过滤，不校验对应小说是否存在，未知 ID 返回空列表。
// @Summary 获取章节列表
// @Description 获取指定小说的章节列表，按章节序号升序排列
// @Tags Chapters
// @Produce json
// @Param nid path string true "小说 ID"
// @Success 200 {array} dto.ChapterResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/novels/{nid}/chapters [get]
func (h *ChapterHandler) ListChapters(c *gin.Context) {
	ctx := c.Request.Context()
	novelID := dto.BindNovelID(c)

	chapters, err := h.chapterRepo.ListByNovel(ctx, novelID)
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to list chapters", err)
		dto.InternalError(c, "failed to list chapters")
		return
	}

	c.JSON(http.StatusOK, dto.ToChapterListResponse(chapters))
}

// CreateChapter 创建章节
// @Summary 创建章节
// @Description 在指定小说下创建新章节并返回其 ID
// @Tags Chapters
// @Accept json
// @Produce json
// @Param nid path string true "小说 ID"
// @Param body body dto.CreateChapterRequest true "章节信息"
// @Success 200 {object} dto.CreateResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/novels/{nid}/chapters [post]
func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	ctx := c.Request.Context()
	novelID := dto.BindNovelID(c)

	var req dto.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.UnprocessableEntity(c, "invalid request body", &dto.ErrorDetail{Details: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		dto.ValidationFailed(c, err)
		return
	}

	id, err := h.chapterRepo.Create(ctx, req.ToChapterEntity(novelID))
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to create chapter", err)
		dto.InternalError(c, "failed to create chapter")
		return
	}

	c.JSON(http.StatusOK, dto.CreateResponse{ID: id.Hex()})
}

// GetChapter 获取章节详情
//
// 章节创建后不可变，详情走读穿透缓存。
// @Summary 获取章节详情
// @Description 获取指定章节的详细信息
// @Tags Chapters
// @Produce json
// @Param cid path string true "章节 ID"
// @Success 200 {object} dto.ChapterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/chapters/{cid} [get]
func (h *ChapterHandler) GetChapter(c *gin.Context) {
	ctx := c.Request.Context()
	raw := dto.BindChapterID(c)

	id, err := dto.ParseObjectID(raw)
	if err != nil {
		dto.FromError(c, err)
		return
	}

	payload, err := h.cache.GetOrLoadSafe(ctx, redis.BuildChapterKey(raw), h.cfg.Cache.ReadThrough.TTL, func() (interface{}, error) {
		chapter, err := h.chapterRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if chapter == nil {
			return nil, errors.ErrChapterNotFound
		}
		return dto.ToChapterResponse(chapter), nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			dto.FromError(c, err)
			return
		}
		logger.Error(ctx, "failed to get chapter", err)
		dto.InternalError(c, "failed to get chapter")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
