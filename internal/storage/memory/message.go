package memory

import (
	"fmt"
	"sync"

	"halforms/backend/internal/domain"
	"halforms/backend/internal/pagination"
)

// MessageStore 按收件箱 ID 分区保存消息。
//
// 分区在首次插入时创建，只读操作不会创建分区。
type MessageStore struct {
	mu       sync.RWMutex
	messages map[int64][]*domain.Message // inboxID -> messages
}

// NewMessageStore 创建一个空的消息存储。
func NewMessageStore() *MessageStore {
	return &MessageStore{messages: make(map[int64][]*domain.Message)}
}

// ListMessages 对指定收件箱的消息快照分页，分区不存在时按空集合处理。
func (s *MessageStore) ListMessages(inboxID int64, pageable *domain.Pageable) (domain.Page[domain.Message], error) {
	s.mu.RLock()
	scope := s.messages[inboxID]
	snapshot := make([]domain.Message, 0, len(scope))
	for _, msg := range scope {
		snapshot = append(snapshot, *msg)
	}
	s.mu.RUnlock()

	return pagination.Paginate(snapshot, pageable)
}

// GetMessage 在指定收件箱内查找消息。
func (s *MessageStore) GetMessage(inboxID, id int64) (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if msg := s.findLocked(inboxID, id); msg != nil {
		return *msg, true
	}
	return domain.Message{}, false
}

// InsertMessage 在指定收件箱内分配 ID 并追加消息。
func (s *MessageStore) InsertMessage(inboxID int64, input *domain.MessageInput) (domain.Message, error) {
	if input == nil {
		return domain.Message{}, fmt.Errorf("message input is required: %w", domain.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	scope := s.messages[inboxID]
	msg := &domain.Message{
		ID:      nextMessageID(scope),
		InboxID: inboxID,
	}
	mergeMessage(msg, input)
	s.messages[inboxID] = append(scope, msg)
	return *msg, nil
}

// UpdateMessage 原地覆盖标题与内容。
func (s *MessageStore) UpdateMessage(inboxID, id int64, input *domain.MessageInput) (domain.Message, bool, error) {
	if input == nil {
		return domain.Message{}, false, fmt.Errorf("message input is required: %w", domain.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.findLocked(inboxID, id)
	if msg == nil {
		return domain.Message{}, false, nil
	}
	mergeMessage(msg, input)
	return *msg, true, nil
}

// DeleteMessage 删除指定消息，返回是否发生删除。
func (s *MessageStore) DeleteMessage(inboxID, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	scope, ok := s.messages[inboxID]
	if !ok {
		return false
	}
	for i, msg := range scope {
		if msg.ID == id {
			s.messages[inboxID] = append(scope[:i], scope[i+1:]...)
			return true
		}
	}
	return false
}

// CountMessages 返回所有分区的消息总数。
func (s *MessageStore) CountMessages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, scope := range s.messages {
		count += len(scope)
	}
	return count
}

func (s *MessageStore) findLocked(inboxID, id int64) *domain.Message {
	for _, msg := range s.messages[inboxID] {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

func nextMessageID(scope []*domain.Message) int64 {
	var id int64
	for _, msg := range scope {
		if msg.ID > id {
			id = msg.ID
		}
	}
	return id + 1
}

func mergeMessage(msg *domain.Message, input *domain.MessageInput) {
	msg.Title = input.Title
	msg.Content = input.Content
}
