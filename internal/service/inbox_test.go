package service

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"halforms/backend/internal/domain"
	"halforms/backend/internal/monitoring"
	"halforms/backend/internal/storage/memory"
)

// MockInboxRepository 模拟收件箱存储
type MockInboxRepository struct {
	mock.Mock
}

func (m *MockInboxRepository) ListInboxes(pageable *domain.Pageable) (domain.Page[domain.Inbox], error) {
	args := m.Called(pageable)
	return args.Get(0).(domain.Page[domain.Inbox]), args.Error(1)
}

func (m *MockInboxRepository) GetInbox(id int64) (domain.Inbox, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Inbox), args.Bool(1)
}

func (m *MockInboxRepository) InsertInbox(input *domain.InboxInput) (domain.Inbox, error) {
	args := m.Called(input)
	return args.Get(0).(domain.Inbox), args.Error(1)
}

func (m *MockInboxRepository) UpdateInbox(id int64, input *domain.InboxInput) (domain.Inbox, bool, error) {
	args := m.Called(id, input)
	return args.Get(0).(domain.Inbox), args.Bool(1), args.Error(2)
}

func (m *MockInboxRepository) DeleteInbox(id int64) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockInboxRepository) CountInboxes() int {
	args := m.Called()
	return args.Int(0)
}

func TestInboxService_CRUD(t *testing.T) {
	svc := NewInboxService(memory.NewInboxStore())

	t.Run("创建后立即可查", func(t *testing.T) {
		created, err := svc.Create(&domain.InboxInput{Name: "Inbox", Description: "demo"})
		require.NoError(t, err)
		assert.Positive(t, created.ID)

		found, err := svc.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("查询不存在的收件箱", func(t *testing.T) {
		_, err := svc.Get(404)
		assert.ErrorIs(t, err, ErrInboxNotFound)
	})

	t.Run("更新不存在的收件箱", func(t *testing.T) {
		_, err := svc.Update(404, &domain.InboxInput{Name: "x", Description: "x"})
		assert.ErrorIs(t, err, ErrInboxNotFound)
	})

	t.Run("删除后不可查", func(t *testing.T) {
		created, _ := svc.Create(&domain.InboxInput{Name: "tmp", Description: "tmp"})
		require.NoError(t, svc.Delete(created.ID))

		_, err := svc.Get(created.ID)
		assert.ErrorIs(t, err, ErrInboxNotFound)
		assert.ErrorIs(t, svc.Delete(created.ID), ErrInboxNotFound)
	})
}

func TestInboxService_InvalidArguments(t *testing.T) {
	repo := new(MockInboxRepository)
	svc := NewInboxService(repo)

	_, err := svc.Get(0)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	_, err = svc.Update(-1, &domain.InboxInput{})
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	assert.True(t, errors.Is(svc.Delete(0), domain.ErrInvalidArgument))

	// 非法 ID 在服务层被拦截，不会访问存储
	repo.AssertNotCalled(t, "GetInbox", mock.Anything)
	repo.AssertNotCalled(t, "UpdateInbox", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteInbox", mock.Anything)
}

func TestInboxService_DelegatesToRepository(t *testing.T) {
	repo := new(MockInboxRepository)
	svc := NewInboxService(repo)

	pageable := &domain.Pageable{Page: 0, Size: 20}
	expected := domain.Page[domain.Inbox]{
		Items:    []domain.Inbox{{ID: 1, Name: "a", Description: "b"}},
		Pageable: *pageable,
		Total:    1,
	}
	repo.On("ListInboxes", pageable).Return(expected, nil)

	page, err := svc.List(pageable)
	require.NoError(t, err)
	assert.Equal(t, expected, page)
	repo.AssertExpectations(t)
}

func TestInboxService_Metrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	svc := NewInboxService(memory.NewInboxStore())
	svc.SetMetrics(metrics)

	created, err := svc.Create(&domain.InboxInput{Name: "a", Description: "a"})
	require.NoError(t, err)
	svc.Create(&domain.InboxInput{Name: "b", Description: "b"})
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.InboxesTotal))

	svc.Get(99)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("inbox", "get", monitoring.ResultNotFound)))

	require.NoError(t, svc.Delete(created.ID))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.InboxesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("inbox", "insert", monitoring.ResultOK)))
}
