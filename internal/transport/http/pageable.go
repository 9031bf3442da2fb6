package httptransport

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"halforms/backend/internal/config"
	"halforms/backend/internal/domain"
)

// maxPageIndex 是 page 参数的上限
const maxPageIndex = math.MaxInt32

// pageableFromQuery 从查询参数解析分页请求
//
// page 缺省或非法时为 0，负数按 0 处理，超过 maxPageIndex 时截断；size 缺省、非法或小于 1 时使用默认值，
// 超过上限时截断为上限。sort 参数被接受但不参与排序。
func pageableFromQuery(c *gin.Context, cfg config.PaginationConfig) *domain.Pageable {
	page := 0
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = min(v, maxPageIndex)
		}
	}

	size := cfg.DefaultSize
	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			size = v
		}
	}
	if size > cfg.MaxSize {
		size = cfg.MaxSize
	}

	return &domain.Pageable{Page: page, Size: size}
}

// pathID 解析路径中的数字 ID，失败时已写出 400 响应
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		BadRequest(c, MsgInvalidID)
		return 0, false
	}
	return id, true
}
