// Package pagination 提供基于页码/页大小的内存切片分页。
package pagination

import (
	"fmt"

	"halforms/backend/internal/domain"
)

// Paginate 按分页请求截取 items 的一页。
//
// 返回的 Page.Total 始终为 items 的完整长度，即便所请求的页已越界（此时 Items 为空）。
// items 为 nil、pageable 为 nil、Page 为负数或 Size 不为正数时返回 domain.ErrInvalidArgument。
func Paginate[T any](items []T, pageable *domain.Pageable) (domain.Page[T], error) {
	if items == nil {
		return domain.Page[T]{}, fmt.Errorf("items are required: %w", domain.ErrInvalidArgument)
	}
	if pageable == nil {
		return domain.Page[T]{}, fmt.Errorf("pageable is required: %w", domain.ErrInvalidArgument)
	}
	if pageable.Page < 0 {
		return domain.Page[T]{}, fmt.Errorf("page must not be negative, got %d: %w", pageable.Page, domain.ErrInvalidArgument)
	}
	if pageable.Size <= 0 {
		return domain.Page[T]{}, fmt.Errorf("size must be positive, got %d: %w", pageable.Size, domain.ErrInvalidArgument)
	}

	return domain.Page[T]{
		Items:    Match(items, *pageable),
		Pageable: *pageable,
		Total:    len(items),
	}, nil
}

// Match 返回 items 中落在 pageable 所描述窗口内的元素。
// 调用方需保证 pageable 已通过校验。
func Match[T any](items []T, pageable domain.Pageable) []T {
	// 先按页码判断越界，避免 Page*Size 溢出
	if len(items) == 0 || pageable.Page > (len(items)-1)/pageable.Size {
		return []T{}
	}

	first := pageable.Offset()
	last := first + min(pageable.Size, len(items)-first)

	// 拷贝一份，避免调用方通过返回值改写底层数组
	out := make([]T, last-first)
	copy(out, items[first:last])
	return out
}
