package domain

// Inbox 表示一个收件箱资源。
type Inbox struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InboxInput 定义创建或更新收件箱时可写的字段。
type InboxInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}
