package service

import (
	"halforms/backend/internal/domain"
	"halforms/backend/internal/monitoring"
	"halforms/backend/internal/storage"
)

// MessageService 封装按收件箱划分的消息操作。
//
// 与存储一致，不校验 inboxID 对应的收件箱是否存在。
type MessageService struct {
	repo    storage.MessageRepository
	metrics *monitoring.Metrics // 可选
}

// NewMessageService 创建消息业务服务。
func NewMessageService(repo storage.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// SetMetrics 设置监控指标
func (s *MessageService) SetMetrics(metrics *monitoring.Metrics) {
	s.metrics = metrics
	s.refreshGauge()
}

// List 返回指定收件箱的一页消息。
func (s *MessageService) List(inboxID int64, pageable *domain.Pageable) (domain.Page[domain.Message], error) {
	if err := requireID("inbox id", inboxID); err != nil {
		s.record("list", err)
		return domain.Page[domain.Message]{}, err
	}

	page, err := s.repo.ListMessages(inboxID, pageable)
	s.record("list", err)
	return page, err
}

// Get 获取单条消息。
func (s *MessageService) Get(inboxID, id int64) (domain.Message, error) {
	if err := requireIDs(inboxID, id); err != nil {
		s.record("get", err)
		return domain.Message{}, err
	}

	msg, ok := s.repo.GetMessage(inboxID, id)
	if !ok {
		s.record("get", ErrMessageNotFound)
		return domain.Message{}, ErrMessageNotFound
	}
	s.record("get", nil)
	return msg, nil
}

// Create 在指定收件箱内新建消息。
func (s *MessageService) Create(inboxID int64, input *domain.MessageInput) (domain.Message, error) {
	if err := requireID("inbox id", inboxID); err != nil {
		s.record("insert", err)
		return domain.Message{}, err
	}

	msg, err := s.repo.InsertMessage(inboxID, input)
	s.record("insert", err)
	if err != nil {
		return domain.Message{}, err
	}
	s.refreshGauge()
	return msg, nil
}

// Update 更新消息的标题与内容。
func (s *MessageService) Update(inboxID, id int64, input *domain.MessageInput) (domain.Message, error) {
	if err := requireIDs(inboxID, id); err != nil {
		s.record("update", err)
		return domain.Message{}, err
	}

	msg, ok, err := s.repo.UpdateMessage(inboxID, id, input)
	if err == nil && !ok {
		err = ErrMessageNotFound
	}
	s.record("update", err)
	if err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

// Delete 删除指定消息。
func (s *MessageService) Delete(inboxID, id int64) error {
	if err := requireIDs(inboxID, id); err != nil {
		s.record("delete", err)
		return err
	}

	if !s.repo.DeleteMessage(inboxID, id) {
		s.record("delete", ErrMessageNotFound)
		return ErrMessageNotFound
	}
	s.record("delete", nil)
	s.refreshGauge()
	return nil
}

// Count 返回所有收件箱的消息总数。
func (s *MessageService) Count() int {
	return s.repo.CountMessages()
}

func (s *MessageService) record(op string, err error) {
	recordOperation(s.metrics, entityMessage, op, err)
}

func (s *MessageService) refreshGauge() {
	if s.metrics != nil {
		s.metrics.UpdateMessagesTotal(s.repo.CountMessages())
	}
}

func requireIDs(inboxID, id int64) error {
	if err := requireID("inbox id", inboxID); err != nil {
		return err
	}
	return requireID("message id", id)
}
