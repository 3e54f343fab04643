package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novel-reader-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestFromErrorAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid id", err: errors.ErrInvalidID, wantStatus: http.StatusBadRequest, wantMsg: "Invalid ID format"},
		{name: "novel not found", err: errors.ErrNovelNotFound, wantStatus: http.StatusNotFound, wantMsg: "Novel not found"},
		{name: "chapter not found", err: errors.ErrChapterNotFound, wantStatus: http.StatusNotFound, wantMsg: "Chapter not found"},
		{name: "database unavailable", err: errors.ErrDatabaseUnavailable, wantStatus: http.StatusServiceUnavailable, wantMsg: "database not initialized"},
		{name: "database error", err: errors.ErrDatabaseError, wantStatus: http.StatusInternalServerError, wantMsg: "database error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeErrorResponse(t, w)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestFromErrorPlainErrorBecomes500(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, fmt.Errorf("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "internal server error", resp.Message)
	// 底层错误信息不外泄
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestValidationFailedExpandsFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := UpsertProgressRequest{UserID: "", NovelID: "n1", ChapterID: "c1", Position: nil}
	err := req.Validate()
	require.Error(t, err)

	ValidationFailed(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeErrorResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "user_id")
	assert.Contains(t, resp.Error.Fields, "position")
	assert.NotContains(t, resp.Error.Fields, "novel_id")
}

func TestErrorIncludesTraceID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "abc123")

	NotFound(c, "Novel not found")

	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "abc123", resp.TraceID)
}
