package memory

import (
	"fmt"
	"sync"

	"halforms/backend/internal/domain"
	"halforms/backend/internal/pagination"
)

// InboxStore 使用内存切片保存收件箱，插入顺序即默认遍历顺序。
type InboxStore struct {
	mu      sync.RWMutex
	inboxes []*domain.Inbox
}

// NewInboxStore 创建一个空的收件箱存储。
func NewInboxStore() *InboxStore {
	return &InboxStore{inboxes: make([]*domain.Inbox, 0)}
}

// ListInboxes 对当前收件箱快照分页。
func (s *InboxStore) ListInboxes(pageable *domain.Pageable) (domain.Page[domain.Inbox], error) {
	s.mu.RLock()
	snapshot := make([]domain.Inbox, 0, len(s.inboxes))
	for _, inbox := range s.inboxes {
		snapshot = append(snapshot, *inbox)
	}
	s.mu.RUnlock()

	return pagination.Paginate(snapshot, pageable)
}

// GetInbox 根据 ID 获取收件箱。
func (s *InboxStore) GetInbox(id int64) (domain.Inbox, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if inbox := s.findLocked(id); inbox != nil {
		return *inbox, true
	}
	return domain.Inbox{}, false
}

// InsertInbox 分配 ID 并追加新的收件箱。
//
// ID 为当前最大 ID + 1，删除最大 ID 的记录后该 ID 可能被再次分配。
func (s *InboxStore) InsertInbox(input *domain.InboxInput) (domain.Inbox, error) {
	if input == nil {
		return domain.Inbox{}, fmt.Errorf("inbox input is required: %w", domain.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inbox := &domain.Inbox{ID: s.nextIDLocked()}
	mergeInbox(inbox, input)
	s.inboxes = append(s.inboxes, inbox)
	return *inbox, nil
}

// UpdateInbox 原地覆盖名称与描述，ID 不变。
func (s *InboxStore) UpdateInbox(id int64, input *domain.InboxInput) (domain.Inbox, bool, error) {
	if input == nil {
		return domain.Inbox{}, false, fmt.Errorf("inbox input is required: %w", domain.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inbox := s.findLocked(id)
	if inbox == nil {
		return domain.Inbox{}, false, nil
	}
	mergeInbox(inbox, input)
	return *inbox, true, nil
}

// DeleteInbox 删除指定收件箱，返回是否发生删除。
func (s *InboxStore) DeleteInbox(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, inbox := range s.inboxes {
		if inbox.ID == id {
			s.inboxes = append(s.inboxes[:i], s.inboxes[i+1:]...)
			return true
		}
	}
	return false
}

// CountInboxes 返回当前收件箱数量。
func (s *InboxStore) CountInboxes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inboxes)
}

func (s *InboxStore) findLocked(id int64) *domain.Inbox {
	for _, inbox := range s.inboxes {
		if inbox.ID == id {
			return inbox
		}
	}
	return nil
}

func (s *InboxStore) nextIDLocked() int64 {
	var id int64
	for _, inbox := range s.inboxes {
		if inbox.ID > id {
			id = inbox.ID
		}
	}
	return id + 1
}

func mergeInbox(inbox *domain.Inbox, input *domain.InboxInput) {
	inbox.Name = input.Name
	inbox.Description = input.Description
}
