package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"halforms/backend/internal/hal"
)

// Response 统一错误响应结构
//
// 成功响应使用 HAL-FORMS 表示，错误响应使用该信封。
type Response struct {
	Code int         `json:"code"`           // 业务状态码
	Msg  string      `json:"msg"`            // 中文提示信息
	Data interface{} `json:"data,omitempty"` // 数据载荷
}

// 业务状态码定义
const (
	CodeBadRequest      = 400 // 请求参数错误
	CodeNotFound        = 404 // 资源不存在
	CodeRequestTooLarge = 413 // 请求体过大
	CodeInternalError   = 500 // 服务器内部错误
)

// HAL 以 HAL-FORMS 媒体类型输出资源表示
func HAL(c *gin.Context, status int, model interface{}) {
	body, err := json.Marshal(model)
	if err != nil {
		_ = c.Error(err)
		InternalError(c, MsgInternalError)
		return
	}
	c.Data(status, hal.MediaType, body)
}

// OK 资源表示响应（200）
func OK(c *gin.Context, model interface{}) {
	HAL(c, http.StatusOK, model)
}

// Created 创建成功响应（201），附带 Location 头
func Created(c *gin.Context, location string, model interface{}) {
	c.Header("Location", location)
	HAL(c, http.StatusCreated, model)
}

// Deleted 删除成功响应（200，无响应体）
func Deleted(c *gin.Context) {
	c.Status(http.StatusOK)
}

// BadRequest 请求参数错误（400）
func BadRequest(c *gin.Context, msg string) {
	abort(c, http.StatusBadRequest, CodeBadRequest, msg)
}

// NotFound 资源不存在错误（404）
func NotFound(c *gin.Context, msg string) {
	abort(c, http.StatusNotFound, CodeNotFound, msg)
}

// RequestTooLarge 请求体过大（413）
func RequestTooLarge(c *gin.Context, msg string) {
	abort(c, http.StatusRequestEntityTooLarge, CodeRequestTooLarge, msg)
}

// InternalError 服务器内部错误（500）
func InternalError(c *gin.Context, msg string) {
	abort(c, http.StatusInternalServerError, CodeInternalError, msg)
}

// Error 通用错误响应（业务状态码与 HTTP 状态码一致）
func Error(c *gin.Context, httpCode int, msg string) {
	abort(c, httpCode, httpCode, msg)
}

func abort(c *gin.Context, httpCode, code int, msg string) {
	c.AbortWithStatusJSON(httpCode, Response{
		Code: code,
		Msg:  msg,
	})
}
