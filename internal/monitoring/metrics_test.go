package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_IndependentRegistries(t *testing.T) {
	// 两个实例互不冲突，不会因重复注册而 panic
	a := NewMetrics()
	b := NewMetrics()

	a.RecordStoreOperation("inbox", "insert", ResultOK)
	a.RecordStoreOperation("inbox", "insert", ResultOK)
	b.RecordStoreOperation("inbox", "insert", ResultOK)

	assert.Equal(t, 2.0, testutil.ToFloat64(a.StoreOperations.WithLabelValues("inbox", "insert", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.StoreOperations.WithLabelValues("inbox", "insert", ResultOK)))
}

func TestMetrics_Gauges(t *testing.T) {
	m := NewMetrics()

	m.UpdateInboxesTotal(3)
	m.UpdateMessagesTotal(15)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.InboxesTotal))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.MessagesTotal))
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest("GET", "/api/inboxes", "200", 10*time.Millisecond, 0, 512)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/inboxes", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}
