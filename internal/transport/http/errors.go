package httptransport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"halforms/backend/internal/domain"
	"halforms/backend/internal/service"
)

// 错误消息映射表（业务错误 -> 中文消息）
var errorMessages = map[error]string{
	service.ErrInboxNotFound:   "收件箱不存在",
	service.ErrMessageNotFound: "消息不存在",
	domain.ErrInvalidArgument:  "请求参数无效",
}

// GetErrorMessage 获取错误的中文消息
func GetErrorMessage(err error) string {
	for target, msg := range errorMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// 通用错误消息
const (
	MsgInvalidRequest   = "请求参数格式错误"
	MsgInvalidID        = "ID 必须是正整数"
	MsgRequestTooLarge  = "请求体过大"
	MsgInternalError    = "服务器内部错误，请稍后重试"
	MsgRouteNotFound    = "请求的资源不存在"
	MsgMethodNotAllowed = "不支持的请求方法"
)

// respondError 将业务错误映射为 HTTP 状态码
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInboxNotFound), errors.Is(err, service.ErrMessageNotFound):
		NotFound(c, GetErrorMessage(err))
	case errors.Is(err, domain.ErrInvalidArgument):
		BadRequest(c, GetErrorMessage(err))
	default:
		_ = c.Error(err)
		InternalError(c, MsgInternalError)
	}
}

// respondBindError 处理请求体绑定失败
func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		RequestTooLarge(c, MsgRequestTooLarge)
		return
	}
	BadRequest(c, MsgInvalidRequest)
}
