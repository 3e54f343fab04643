// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"novel-reader-api/internal/config"
	"novel-reader-api/internal/infrastructure/persistence/redis"
	"novel-reader-api/internal/interfaces/http/handler"
	"novel-reader-api/internal/interfaces/http/middleware"
)

// Handlers 路由依赖的处理器集合，由 Wire 装配
type Handlers struct {
	System   *handler.SystemHandler
	Health   *handler.HealthHandler
	Novel    *handler.NovelHandler
	Chapter  *handler.ChapterHandler
	Progress *handler.ProgressHandler
	Seed     *handler.SeedHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers Handlers
	limiter  *redis.RateLimiter
}

// NewWithDeps 创建带依赖的路由器
func NewWithDeps(cfg *config.Config, handlers Handlers, limiter *redis.RateLimiter) *Router {
	// 设置 Gin 模式
	if cfg.Server.HTTP.Mode != "" {
		gin.SetMode(cfg.Server.HTTP.Mode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
		limiter:  limiter,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}

	// 限流中间件（Redis 未配置时自动退化为直通）
	if r.cfg.Security.RateLimit.Enabled && r.limiter != nil {
		r.engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:  true,
			Requests: r.cfg.Security.RateLimit.Requests,
			Window:   r.cfg.Security.RateLimit.Window,
		}, r.limiter))
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	h := r.handlers

	// 系统端点
	r.engine.GET("/", h.System.Root)
	r.engine.GET("/test", h.System.Diagnostics)
	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	RegisterAPIRoutes(r.engine.Group("/api"), h)
}
