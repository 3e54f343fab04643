package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novel-reader-api/internal/interfaces/http/dto"
	"novel-reader-api/internal/seed"
)

func newSystemRouter() *gin.Engine {
	// mongo 客户端为 nil，对应未配置存储的降级运行状态
	h := NewSystemHandler(nil)
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/api/hello", h.Hello)
	r.GET("/test", h.Diagnostics)
	return r
}

func TestRootMessage(t *testing.T) {
	r := newSystemRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Futuristic Novel Reader Backend Running", resp.Message)
}

func TestHelloMessage(t *testing.T) {
	r := newSystemRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hello from the backend API!", resp.Message)
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	r := newSystemRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	// 诊断接口总是 200，状态细节在响应体里
	require.Equal(t, http.StatusOK, w.Code)

	var resp DiagnosticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp.Backend)
	assert.Equal(t, "⚠️  Available but not initialized", resp.Database)
	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Nil(t, resp.DatabaseURL)
	assert.Nil(t, resp.DatabaseName)
	assert.NotNil(t, resp.Collections)
	assert.Len(t, resp.Collections, 0)
}

func TestSeedEndpoint(t *testing.T) {
	novelRepo := &fakeNovelRepo{}
	chapterRepo := &fakeChapterRepo{}
	h := NewSeedHandler(seed.NewSeeder(novelRepo, chapterRepo))

	r := gin.New()
	r.POST("/api/seed", h.Seed)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, seed.StatusSeeded, resp.Status)
	require.Len(t, resp.Novels, 2)
	assert.Len(t, chapterRepo.chapters, 3)

	// 第二次调用幂等
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, seed.StatusExists, resp.Status)
}

func TestTruncateKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	// 多字节字符按字符截断，不截断到半个字符
	assert.Equal(t, "数据库", truncate("数据库连接失败", 3))
}
