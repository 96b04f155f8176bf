// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速查：
//   - Counter（计数器）：只增不减的累计值（HTTP请求总数、借书总数）
//   - Gauge（仪表盘）：可增可减的瞬时值（正在处理的请求数）
//   - Histogram（直方图）：观测值的分布（请求耗时，自动计算P50/P90/P99）
//
// 使用方式：
//
//	// 1. 启动时初始化
//	metrics.InitMetrics()
//
//	// 2. 通过gin路由暴露/metrics端点（promhttp.Handler）
//
//	// 3. 业务代码记录指标
//	metrics.IncCounter(metrics.BorrowsTotal)
//	metrics.AddCounter(metrics.LateFeeCollectedCentsTotal, float64(fee))
//
// 标签注意事项：避免高基数标签（不要用memberId/bookId做标签，
// 用method、path、status等有限取值的维度）
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/borrowing）、status（200/400/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 借阅业务指标

	// BorrowsTotal 成功借书总数（Counter）
	BorrowsTotal prometheus.Counter

	// BorrowsRejectedTotal 借书被拒总数（Counter）
	// 标签：reason（no_copies/not_active/limit_reached/already_borrowed/not_found）
	BorrowsRejectedTotal *prometheus.CounterVec

	// ReturnsTotal 还书总数（Counter）
	// 标签：late（true/false）
	ReturnsTotal *prometheus.CounterVec

	// LateFeeCollectedCentsTotal 累计逾期费（Counter，单位：分）
	LateFeeCollectedCentsTotal prometheus.Counter

	// BorrowTransactionDuration 借/还原子批次耗时（Histogram）
	// 标签：operation（borrow/return）
	BorrowTransactionDuration *prometheus.HistogramVec

	// 消息队列指标

	// MessagesPublishedTotal 借阅事件发布总数（Counter）
	// 标签：routing_key（borrowing.borrowed/borrowing.returned）、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，使用promauto.New*自动注册到默认Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 借阅业务指标
	BorrowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "borrows_total",
			Help: "成功借书总数",
		},
	)

	BorrowsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "borrows_rejected_total",
			Help: "借书被业务规则拒绝的总数",
		},
		[]string{"reason"},
	)

	ReturnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "returns_total",
			Help: "还书总数",
		},
		[]string{"late"},
	)

	LateFeeCollectedCentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "late_fee_collected_cents_total",
			Help: "累计逾期费（分）",
		},
	)

	BorrowTransactionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "borrow_transaction_duration_seconds",
			Help: "借/还原子批次耗时（秒）",
			// 批次涉及三张表的行锁与写入，比普通查询慢
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "借阅事件发布总数",
		},
		[]string{"routing_key", "result"},
	)
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// AddCounter Counter增加指定值（如累计逾期费）
func AddCounter(counter prometheus.Counter, value float64) {
	counter.Add(value)
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
