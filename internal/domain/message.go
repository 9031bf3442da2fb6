package domain

// Message 表示收件箱内的一条消息。
//
// ID 只在所属收件箱内唯一，不同收件箱可以出现相同的消息 ID。
type Message struct {
	ID      int64  `json:"id"`
	InboxID int64  `json:"inboxId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MessageInput 定义创建或更新消息时可写的字段。
type MessageInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
