package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"halforms/backend/internal/domain"
	"halforms/backend/internal/storage/memory"
)

func TestMessageService_ScopedByInbox(t *testing.T) {
	svc := NewMessageService(memory.NewMessageStore())

	first, err := svc.Create(1, &domain.MessageInput{Title: "t1", Content: "c1"})
	require.NoError(t, err)
	second, err := svc.Create(2, &domain.MessageInput{Title: "t2", Content: "c2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	found, err := svc.Get(2, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", found.Title)

	_, err = svc.Get(3, first.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMessageService_NotFound(t *testing.T) {
	svc := NewMessageService(memory.NewMessageStore())
	created, _ := svc.Create(1, &domain.MessageInput{Title: "t", Content: "c"})

	_, err := svc.Update(1, created.ID+1, &domain.MessageInput{Title: "x", Content: "x"})
	assert.ErrorIs(t, err, ErrMessageNotFound)

	assert.ErrorIs(t, svc.Delete(9, created.ID), ErrMessageNotFound)

	// 未受影响
	found, err := svc.Get(1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMessageService_InvalidArguments(t *testing.T) {
	svc := NewMessageService(memory.NewMessageStore())

	tests := []struct {
		name string
		call func() error
	}{
		{"列表缺少分页参数", func() error { _, err := svc.List(1, nil); return err }},
		{"列表收件箱ID非法", func() error { _, err := svc.List(0, &domain.Pageable{Size: 1}); return err }},
		{"查询消息ID非法", func() error { _, err := svc.Get(1, 0); return err }},
		{"创建缺少内容", func() error { _, err := svc.Create(1, nil); return err }},
		{"更新缺少内容", func() error { _, err := svc.Update(1, 1, nil); return err }},
		{"删除收件箱ID非法", func() error { return svc.Delete(-1, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.call(), domain.ErrInvalidArgument))
		})
	}
}

func TestSeeder_Run(t *testing.T) {
	inboxes := NewInboxService(memory.NewInboxStore())
	messages := NewMessageService(memory.NewMessageStore())

	inboxCount, messageCount, err := NewSeeder(inboxes, messages, zap.NewNop()).Run()
	require.NoError(t, err)
	assert.Equal(t, 3, inboxCount)
	assert.Equal(t, 15, messageCount)
	assert.Equal(t, 3, inboxes.Count())
	assert.Equal(t, 15, messages.Count())

	inbox, err := inboxes.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Inbox 2", inbox.Name)
	assert.Regexp(t, `^I2 [a-zA-Z]{12}$`, inbox.Description)

	page, err := messages.List(2, &domain.Pageable{Page: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Message 1", page.Items[0].Title)
	assert.Regexp(t, `^M1 [a-zA-Z]{12}$`, page.Items[0].Content)
}
