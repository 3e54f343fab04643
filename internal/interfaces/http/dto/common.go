// Package dto 提供 HTTP 层数据传输对象
package dto

// MessageResponse 纯文本消息响应
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateResponse 创建成功响应，返回新记录的十六进制 ID
type CreateResponse struct {
	ID string `json:"id"`
}
