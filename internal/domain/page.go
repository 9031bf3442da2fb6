package domain

import "errors"

// ErrInvalidArgument 表示必需参数缺失或取值非法。
var ErrInvalidArgument = errors.New("invalid argument")

// Pageable 描述分页请求：页码从 0 开始，Size 为每页条数。
type Pageable struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Offset 返回该页第一条记录在完整集合中的下标。
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Page 表示一页数据以及完整集合的总条数。
type Page[T any] struct {
	Items    []T      `json:"items"`
	Pageable Pageable `json:"pageable"`
	Total    int      `json:"total"`
}

// TotalPages 返回总页数，空集合返回 0。
func (p Page[T]) TotalPages() int {
	if p.Pageable.Size <= 0 || p.Total == 0 {
		return 0
	}
	return (p.Total-1)/p.Pageable.Size + 1
}

// HasNext 判断是否存在下一页。
func (p Page[T]) HasNext() bool {
	return p.Pageable.Page < p.TotalPages()-1
}

// HasPrevious 判断是否存在上一页。
func (p Page[T]) HasPrevious() bool {
	return p.Pageable.Page > 0
}
