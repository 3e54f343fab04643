package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"invalid id", ErrInvalidID, http.StatusBadRequest},
		{"invalid param", ErrInvalidParam, http.StatusBadRequest},
		{"novel not found", ErrNovelNotFound, http.StatusNotFound},
		{"chapter not found", ErrChapterNotFound, http.StatusNotFound},
		{"validation failed", ErrValidationFailed, http.StatusUnprocessableEntity},
		{"too many requests", ErrTooManyRequests, http.StatusTooManyRequests},
		{"database unavailable", ErrDatabaseUnavailable, http.StatusServiceUnavailable},
		{"database error", ErrDatabaseError, http.StatusInternalServerError},
		{"unknown", New(CodeUnknown, "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus)
		})
	}
}

func TestWithDetailDoesNotMutatePredefined(t *testing.T) {
	detailed := ErrNovelNotFound.WithDetail("id=abc")

	assert.Equal(t, "id=abc", detailed.Detail)
	assert.Empty(t, ErrNovelNotFound.Detail)
	assert.Equal(t, ErrNovelNotFound.Code, detailed.Code)
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := Wrap(cause, CodeDatabaseError, "query failed")

	require.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "query failed")
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestAsAppError(t *testing.T) {
	t.Run("passthrough", func(t *testing.T) {
		appErr := AsAppError(ErrInvalidID)
		assert.Same(t, ErrInvalidID, appErr)
	})

	t.Run("wraps plain error", func(t *testing.T) {
		appErr := AsAppError(stderrors.New("boom"))
		assert.Equal(t, CodeUnknown, appErr.Code)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	})

	t.Run("found through wrap chain", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to count novels: %w", ErrDatabaseUnavailable)

		require.True(t, IsAppError(wrapped))
		appErr := AsAppError(wrapped)
		assert.Same(t, ErrDatabaseUnavailable, appErr)
		assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPStatus)
	})
}
