// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"novel-reader-api/internal/infrastructure/persistence/mongodb"
	"novel-reader-api/internal/interfaces/http/dto"
)

// SystemHandler 系统信息与诊断处理器
type SystemHandler struct {
	mongo *mongodb.Client
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(mongoClient *mongodb.Client) *SystemHandler {
	return &SystemHandler{
		mongo: mongoClient,
	}
}

// DiagnosticsResponse 数据库诊断响应
//
// database 字段为人类可读状态文案，客户端按原样展示。
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root 服务根路径
// @Summary 服务标识
// @Description 返回后端运行标识
// @Tags System
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Futuristic Novel Reader Backend Running",
	})
}

// Hello 连通性探测
// @Summary 连通性探测
// @Description 前端联调用的问候接口
// @Tags System
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/hello [get]
func (h *SystemHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Hello from the backend API!",
	})
}

// Diagnostics 数据库连接诊断
//
// 区分三种存储状态：未初始化、已配置但访问出错、连接正常。
// 永远返回 200，状态细节放在响应体中。
// @Summary 数据库连接诊断
// @Description 报告数据库配置与连接状态
// @Tags System
// @Produce json
// @Success 200 {object} DiagnosticsResponse
// @Router /test [get]
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.mongo.Available() {
		resp.Database = "✅ Available"
		dbURL := "❌ Not Set"
		if os.Getenv("DATABASE_URL") != "" {
			dbURL = "✅ Set"
		}
		resp.DatabaseURL = &dbURL
		name := h.mongo.DatabaseName()
		resp.DatabaseName = &name
		resp.ConnectionStatus = "Connected"

		names, err := h.mongo.ListCollectionNames(ctx)
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	} else {
		resp.Database = "⚠️  Available but not initialized"
	}

	c.JSON(http.StatusOK, resp)
}

// truncate 按字符截断错误文案
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
