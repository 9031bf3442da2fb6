package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 存储操作结果标签
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
)

// Metrics 监控指标
//
// 所有指标注册在独立的 Registry 上，同一进程内可以创建多个实例（例如测试中）。
type Metrics struct {
	registry *prometheus.Registry

	// HTTP 请求指标
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// 资源指标
	InboxesTotal    prometheus.Gauge
	MessagesTotal   prometheus.Gauge
	StoreOperations *prometheus.CounterVec

	// 错误指标
	ErrorsTotal *prometheus.CounterVec
	PanicsTotal prometheus.Counter

	// 限流指标
	RateLimitBlocks prometheus.Counter
}

// NewMetrics 创建监控指标
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		// HTTP 请求指标
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "halforms_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "halforms_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "halforms_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "endpoint"},
		),

		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "halforms_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "endpoint"},
		),

		// 资源指标
		InboxesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "halforms_inboxes_total",
				Help: "Number of inboxes currently stored",
			},
		),

		MessagesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "halforms_messages_total",
				Help: "Number of messages currently stored across all inboxes",
			},
		),

		StoreOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "halforms_store_operations_total",
				Help: "Total number of store operations by entity, operation and result",
			},
			[]string{"entity", "op", "result"},
		),

		// 错误指标
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "halforms_errors_total",
				Help: "Total number of errors",
			},
			[]string{"type", "component"},
		),

		PanicsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "halforms_panics_total",
				Help: "Total number of recovered panics",
			},
		),

		RateLimitBlocks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "halforms_rate_limit_blocks_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求指标
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration, requestSize, responseSize int64) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	m.HTTPRequestSize.WithLabelValues(method, endpoint).Observe(float64(requestSize))
	m.HTTPResponseSize.WithLabelValues(method, endpoint).Observe(float64(responseSize))
}

// RecordStoreOperation 记录一次存储操作
func (m *Metrics) RecordStoreOperation(entity, op, result string) {
	m.StoreOperations.WithLabelValues(entity, op, result).Inc()
}

// UpdateInboxesTotal 更新收件箱数量
func (m *Metrics) UpdateInboxesTotal(count int) {
	m.InboxesTotal.Set(float64(count))
}

// UpdateMessagesTotal 更新消息总数
func (m *Metrics) UpdateMessagesTotal(count int) {
	m.MessagesTotal.Set(float64(count))
}

// RecordError 记录错误
func (m *Metrics) RecordError(errorType, component string) {
	m.ErrorsTotal.WithLabelValues(errorType, component).Inc()
}

// RecordPanic 记录 panic
func (m *Metrics) RecordPanic() {
	m.PanicsTotal.Inc()
}

// RecordRateLimitBlock 记录限流阻止
func (m *Metrics) RecordRateLimitBlock() {
	m.RateLimitBlocks.Inc()
}

// Registry 返回指标注册表
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// HTTPHandler 返回 Prometheus HTTP 处理器
func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
