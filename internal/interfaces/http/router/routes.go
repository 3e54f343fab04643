// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes 注册 /api 业务路由
func RegisterAPIRoutes(api *gin.RouterGroup, h Handlers) {
	// 连通性探测
	api.GET("/hello", h.System.Hello)

	// 小说管理
	novels := api.Group("/novels")
	{
		novels.GET("", h.Novel.ListNovels)
		novels.POST("", h.Novel.CreateNovel)
		novels.GET("/:nid", h.Novel.GetNovel)

		// 小说下的章节
		novels.GET("/:nid/chapters", h.Chapter.ListChapters)
		novels.POST("/:nid/chapters", h.Chapter.CreateChapter)
	}

	// 章节管理
	chapters := api.Group("/chapters")
	{
		chapters.GET("/:cid", h.Chapter.GetChapter)
	}

	// 阅读进度
	progress := api.Group("/progress")
	{
		progress.GET("/:uid/:nid", h.Progress.GetProgress)
		progress.POST("", h.Progress.UpsertProgress)
	}

	// 演示数据填充
	api.POST("/seed", h.Seed.Seed)
}
