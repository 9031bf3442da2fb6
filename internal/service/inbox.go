package service

import (
	"errors"
	"fmt"

	"halforms/backend/internal/domain"
	"halforms/backend/internal/monitoring"
	"halforms/backend/internal/storage"
)

var (
	ErrInboxNotFound   = errors.New("inbox not found")
	ErrMessageNotFound = errors.New("message not found")
)

const (
	entityInbox   = "inbox"
	entityMessage = "message"
)

// InboxService 封装收件箱相关业务操作。
type InboxService struct {
	repo    storage.InboxRepository
	metrics *monitoring.Metrics // 可选
}

// NewInboxService 创建收件箱业务服务。
func NewInboxService(repo storage.InboxRepository) *InboxService {
	return &InboxService{repo: repo}
}

// SetMetrics 设置监控指标
func (s *InboxService) SetMetrics(metrics *monitoring.Metrics) {
	s.metrics = metrics
	s.refreshGauge()
}

// List 返回一页收件箱。
func (s *InboxService) List(pageable *domain.Pageable) (domain.Page[domain.Inbox], error) {
	page, err := s.repo.ListInboxes(pageable)
	s.record("list", err)
	return page, err
}

// Get 根据 ID 获取收件箱。
func (s *InboxService) Get(id int64) (domain.Inbox, error) {
	if err := requireID("inbox id", id); err != nil {
		s.record("get", err)
		return domain.Inbox{}, err
	}

	inbox, ok := s.repo.GetInbox(id)
	if !ok {
		s.record("get", ErrInboxNotFound)
		return domain.Inbox{}, ErrInboxNotFound
	}
	s.record("get", nil)
	return inbox, nil
}

// Create 新建收件箱，ID 由存储分配。
func (s *InboxService) Create(input *domain.InboxInput) (domain.Inbox, error) {
	inbox, err := s.repo.InsertInbox(input)
	s.record("insert", err)
	if err != nil {
		return domain.Inbox{}, err
	}
	s.refreshGauge()
	return inbox, nil
}

// Update 更新收件箱的名称与描述。
func (s *InboxService) Update(id int64, input *domain.InboxInput) (domain.Inbox, error) {
	if err := requireID("inbox id", id); err != nil {
		s.record("update", err)
		return domain.Inbox{}, err
	}

	inbox, ok, err := s.repo.UpdateInbox(id, input)
	if err == nil && !ok {
		err = ErrInboxNotFound
	}
	s.record("update", err)
	if err != nil {
		return domain.Inbox{}, err
	}
	return inbox, nil
}

// Delete 删除指定收件箱。
//
// 收件箱下的消息不会级联删除。
func (s *InboxService) Delete(id int64) error {
	if err := requireID("inbox id", id); err != nil {
		s.record("delete", err)
		return err
	}

	if !s.repo.DeleteInbox(id) {
		s.record("delete", ErrInboxNotFound)
		return ErrInboxNotFound
	}
	s.record("delete", nil)
	s.refreshGauge()
	return nil
}

// Count 返回当前收件箱数量。
func (s *InboxService) Count() int {
	return s.repo.CountInboxes()
}

func (s *InboxService) record(op string, err error) {
	recordOperation(s.metrics, entityInbox, op, err)
}

func (s *InboxService) refreshGauge() {
	if s.metrics != nil {
		s.metrics.UpdateInboxesTotal(s.repo.CountInboxes())
	}
}

// requireID 校验 ID 为正数，零值视为参数缺失。
func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s must be positive, got %d: %w", name, id, domain.ErrInvalidArgument)
	}
	return nil
}

func recordOperation(metrics *monitoring.Metrics, entity, op string, err error) {
	if metrics == nil {
		return
	}
	result := monitoring.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrInboxNotFound), errors.Is(err, ErrMessageNotFound):
		result = monitoring.ResultNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		result = monitoring.ResultInvalid
	default:
		metrics.RecordError("store", entity)
		result = "error"
	}
	metrics.RecordStoreOperation(entity, op, result)
}
