package storage

import (
	"halforms/backend/internal/domain"
)

// InboxRepository 定义收件箱数据存取操作。
//
// 查找类方法以 (值, bool) 形式返回，false 表示记录不存在，不视为错误。
type InboxRepository interface {
	ListInboxes(pageable *domain.Pageable) (domain.Page[domain.Inbox], error)
	GetInbox(id int64) (domain.Inbox, bool)
	InsertInbox(input *domain.InboxInput) (domain.Inbox, error)
	UpdateInbox(id int64, input *domain.InboxInput) (domain.Inbox, bool, error)
	DeleteInbox(id int64) bool
	CountInboxes() int
}

// MessageRepository 定义按收件箱分区的消息数据存取操作。
//
// 仅按 inboxID 分区，不校验收件箱是否存在。
type MessageRepository interface {
	ListMessages(inboxID int64, pageable *domain.Pageable) (domain.Page[domain.Message], error)
	GetMessage(inboxID, id int64) (domain.Message, bool)
	InsertMessage(inboxID int64, input *domain.MessageInput) (domain.Message, error)
	UpdateMessage(inboxID, id int64, input *domain.MessageInput) (domain.Message, bool, error)
	DeleteMessage(inboxID, id int64) bool
	CountMessages() int
}
