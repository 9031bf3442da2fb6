package service

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"halforms/backend/internal/domain"
)

const (
	seedInboxCount   = 3
	seedMessageCount = 5
	seedSuffixLength = 12
)

// Seeder 在启动时写入演示数据：3 个收件箱，每个收件箱 5 条消息。
type Seeder struct {
	inboxes  *InboxService
	messages *MessageService
	logger   *zap.Logger
	random   *rand.Rand
	alphabet []rune
}

// NewSeeder 创建演示数据写入器。
func NewSeeder(inboxes *InboxService, messages *MessageService, logger *zap.Logger) *Seeder {
	return &Seeder{
		inboxes:  inboxes,
		messages: messages,
		logger:   logger,
		random:   rand.New(rand.NewSource(time.Now().UnixNano())),
		alphabet: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	}
}

// Run 写入演示数据，返回写入的收件箱与消息数量。
func (s *Seeder) Run() (int, int, error) {
	inboxCount, messageCount := 0, 0

	for i := 1; i <= seedInboxCount; i++ {
		inbox, err := s.inboxes.Create(&domain.InboxInput{
			Name:        fmt.Sprintf("Inbox %d", i),
			Description: fmt.Sprintf("I%d %s", i, s.randomAlphabetic(seedSuffixLength)),
		})
		if err != nil {
			return inboxCount, messageCount, fmt.Errorf("seed inbox %d: %w", i, err)
		}
		inboxCount++
		s.logger.Debug("inserted inbox", zap.Int64("id", inbox.ID), zap.String("name", inbox.Name))

		for j := 1; j <= seedMessageCount; j++ {
			msg, err := s.messages.Create(inbox.ID, &domain.MessageInput{
				Title:   fmt.Sprintf("Message %d", j),
				Content: fmt.Sprintf("M%d %s", j, s.randomAlphabetic(seedSuffixLength)),
			})
			if err != nil {
				return inboxCount, messageCount, fmt.Errorf("seed message %d of inbox %d: %w", j, inbox.ID, err)
			}
			messageCount++
			s.logger.Debug("inserted message",
				zap.Int64("inbox_id", inbox.ID),
				zap.Int64("id", msg.ID),
				zap.String("title", msg.Title),
			)
		}
	}

	return inboxCount, messageCount, nil
}

func (s *Seeder) randomAlphabetic(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = s.alphabet[s.random.Intn(len(s.alphabet))]
	}
	return string(b)
}
