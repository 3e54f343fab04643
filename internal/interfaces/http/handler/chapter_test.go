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
)

func newChapterRouter(repo *fakeChapterRepo) *gin.Engine {
	h := NewChapterHandler(repo, nil, &config.Config{})
	r := gin.New()
	r.GET("/api/novels/:nid/chapters", h.ListChapters)
	r.POST("/api/novels/:nid/chapters", h.CreateChapter)
	r.GET("/api/chapters/:cid", h.GetChapter)
	return r
}

func TestListChaptersSortedByIndex(t *testing.T) {
	repo := &fakeChapterRepo{chapters: []*entity.Chapter{
		{ID: primitive.NewObjectID(), NovelID: "novel-1", Index: 2, Title: "Ghost Frequencies", Content: "static"},
		{ID: primitive.NewObjectID(), NovelID: "novel-1", Index: 1, Title: "Docking Under Neon", Content: "halo"},
		{ID: primitive.NewObjectID(), NovelID: "novel-2", Index: 1, Title: "Pruning the Dawn", Content: "layers"},
	}}
	r := newChapterRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels/novel-1/chapters", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []dto.ChapterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 2, got[1].Index)
}

func TestListChaptersUnknownNovelReturnsEmptyArray(t *testing.T) {
	// novel_id 不校验存在性，未知 ID 得到空列表而非 404
	r := newChapterRouter(&fakeChapterRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/novels/does-not-exist/chapters", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCreateChapterTakesNovelIDFromPath(t *testing.T) {
	repo := &fakeChapterRepo{}
	r := newChapterRouter(repo)

	body := `{"index":1,"title":"Docking Under Neon","content":"The city-orbit glowed"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/novels/novel-xyz/chapters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)

	require.Len(t, repo.chapters, 1)
	assert.Equal(t, "novel-xyz", repo.chapters[0].NovelID)
}

func TestCreateChapterRejectsZeroIndex(t *testing.T) {
	r := newChapterRouter(&fakeChapterRepo{})

	body := `{"index":0,"title":"t","content":"c"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/novels/n1/chapters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "index")
}

func TestGetChapterInvalidID(t *testing.T) {
	r := newChapterRouter(&fakeChapterRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chapters/42", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid ID format", resp.Message)
}

func TestGetChapterNotFound(t *testing.T) {
	r := newChapterRouter(&fakeChapterRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chapters/"+primitive.NewObjectID().Hex(), nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Chapter not found", resp.Message)
}

func TestGetChapterFound(t *testing.T) {
	ch := &entity.Chapter{
		ID:      primitive.NewObjectID(),
		NovelID: "novel-1",
		Index:   1,
		Title:   "Docking Under Neon",
		Content: "The city-orbit glowed like a halo around the dead moon.",
	}
	r := newChapterRouter(&fakeChapterRepo{chapters: []*entity.Chapter{ch}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chapters/"+ch.ID.Hex(), nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChapterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ch.ID.Hex(), resp.ID)
	assert.Equal(t, "novel-1", resp.NovelID)
	assert.Equal(t, ch.Content, resp.Content)
}
