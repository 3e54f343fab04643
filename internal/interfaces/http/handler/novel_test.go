package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"novel-reader-api/internal/config"
	"novel-reader-api/internal/domain/entity"
	"novel-reader-api/internal/interfaces/http/dto"
	pkgerrors "novel-reader-api/pkg/errors"
)

func newNovelRouter(repo *fakeNovelRepo) *gin.Engine {
	h := NewNovelHandler(repo, nil, &config.Config{})
	r := gin.New()
	r.GET("/api/novels", h.ListNovels)
	r.POST("/api/novels", h.CreateNovel)
	r.GET("/api/novels/:nid", h.GetNovel)
	return r
}

func TestListNovelsReturnsRawArray(t *testing.T) {
	cover := "https://example.com/a.png"
	repo := &fakeNovelRepo{novels: []*entity.Novel{
		{ID: primitive.NewObjectID(), Title: "Quantum Garden", Author: "Jun Park", Description: "d", CoverURL: &cover, Genres: []string{"Speculative"}},
		{ID: primitive.NewObjectID(), Title: "Neon Skies of Andromeda", Author: "Ava Kestrel", Description: "d", Genres: []string{"Sci-Fi"}},
	}}
	r := newNovelRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels", nil))

	require.Equal(t, http.StatusOK, w.Code)
	// 成功响应为裸数组，无信封
	assert.True(t, strings.HasPrefix(w.Body.String(), "["))

	var got []dto.NovelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	// 按标题升序
	assert.Equal(t, "Neon Skies of Andromeda", got[0].Title)
	assert.Equal(t, "Quantum Garden", got[1].Title)
}

func TestListNovelsEmptyStoreReturnsEmptyArray(t *testing.T) {
	r := newNovelRouter(&fakeNovelRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCreateNovelReturnsID(t *testing.T) {
	repo := &fakeNovelRepo{}
	r := newNovelRouter(repo)

	body := `{"title":"Quantum Garden","author":"Jun Park","description":"timelines","genres":["Speculative"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/novels", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	id, err := primitive.ObjectIDFromHex(resp.ID)
	require.NoError(t, err)

	require.Len(t, repo.novels, 1)
	assert.Equal(t, id, repo.novels[0].ID)
	assert.Equal(t, "Quantum Garden", repo.novels[0].Title)
}

func TestCreateNovelValidationFailure(t *testing.T) {
	r := newNovelRouter(&fakeNovelRepo{})

	body := `{"title":"","author":"Jun Park","description":"d"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/novels", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "title")
}

func TestCreateNovelMalformedBody(t *testing.T) {
	r := newNovelRouter(&fakeNovelRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/novels", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetNovelInvalidID(t *testing.T) {
	r := newNovelRouter(&fakeNovelRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels/not-a-hex-id", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid ID format", resp.Message)
}

func TestGetNovelNotFound(t *testing.T) {
	r := newNovelRouter(&fakeNovelRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels/"+primitive.NewObjectID().Hex(), nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Novel not found", resp.Message)
}

func TestGetNovelFound(t *testing.T) {
	novel := &entity.Novel{
		ID:          primitive.NewObjectID(),
		Title:       "Neon Skies of Andromeda",
		Author:      "Ava Kestrel",
		Description: "conspiracy spanning galaxies",
		Genres:      []string{"Sci-Fi"},
	}
	r := newNovelRouter(&fakeNovelRepo{novels: []*entity.Novel{novel}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels/"+novel.ID.Hex(), nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.NovelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, novel.ID.Hex(), resp.ID)
	assert.Equal(t, "Neon Skies of Andromeda", resp.Title)
	// cover_url 缺省时序列化为显式 null
	assert.Contains(t, w.Body.String(), `"cover_url":null`)
}

func TestListNovelsStoreUnavailable(t *testing.T) {
	r := newNovelRouter(&fakeNovelRepo{err: pkgerrors.ErrDatabaseUnavailable})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "database not initialized", resp.Message)
}
