// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"novel-reader-api/pkg/errors"
)

// ErrorDetail 错误详情
type ErrorDetail struct {
	ErrorCode string            `json:"error_code,omitempty"`
	Details   string            `json:"details,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// ErrorResponse 错误响应结构
//
// 成功响应直接返回原始 JSON（数组、对象或 null），仅错误路径使用统一信封。
type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"error,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorResponse{
		Code:    httpCode,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// ErrorWithDetail 返回带详情的错误响应
func ErrorWithDetail(c *gin.Context, httpCode int, message string, detail *ErrorDetail) {
	c.JSON(httpCode, ErrorResponse{
		Code:    httpCode,
		Message: message,
		Error:   detail,
		TraceID: c.GetString("trace_id"),
	})
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 返回 404 错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// UnprocessableEntity 返回 422 错误
func UnprocessableEntity(c *gin.Context, message string, detail *ErrorDetail) {
	ErrorWithDetail(c, http.StatusUnprocessableEntity, message, detail)
}

// InternalError 返回 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable 返回 503 错误
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

// FromError 将业务错误映射为 HTTP 错误响应
//
// AppError 按其携带的状态码返回；校验错误展开字段明细；其余错误一律 500。
func FromError(c *gin.Context, err error) {
	if !errors.IsAppError(err) {
		InternalError(c, "internal server error")
		return
	}
	appErr := errors.AsAppError(err)

	var detail *ErrorDetail
	if appErr.Code != "" || appErr.Detail != "" {
		detail = &ErrorDetail{
			ErrorCode: string(appErr.Code),
			Details:   appErr.Detail,
		}
	}

	// ozzo 的字段错误按 json 字段名展开，方便前端逐字段提示
	var verrs validation.Errors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		if detail == nil {
			detail = &ErrorDetail{}
		}
		fields := make(map[string]string, len(verrs))
		for name, ferr := range verrs {
			fields[name] = ferr.Error()
		}
		detail.Fields = fields
	}

	ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, detail)
}

// ValidationFailed 返回 422 校验失败响应
func ValidationFailed(c *gin.Context, err error) {
	FromError(c, errors.ErrValidationFailed.WithError(err))
}
