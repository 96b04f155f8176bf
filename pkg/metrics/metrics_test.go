package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if BorrowsTotal == nil {
		t.Error("BorrowsTotal未初始化")
	}
	if ReturnsTotal == nil {
		t.Error("ReturnsTotal未初始化")
	}
	if LateFeeCollectedCentsTotal == nil {
		t.Error("LateFeeCollectedCentsTotal未初始化")
	}
}

// TestInitMetricsIdempotent 重复初始化不应panic（promauto重复注册会panic）
func TestInitMetricsIdempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
}

// TestBorrowCounter 测试借书计数器
func TestBorrowCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BorrowsTotal)

	IncCounter(BorrowsTotal)
	IncCounter(BorrowsTotal)
	IncCounter(BorrowsTotal)

	after := getCounterValue(t, BorrowsTotal)
	if after-before != 3 {
		t.Errorf("Counter增量错误: expected=3, got=%f", after-before)
	}
}

// TestLateFeeCounter 测试逾期费累计（Add而非Inc）
func TestLateFeeCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, LateFeeCollectedCentsTotal)

	// 3天逾期 × 100分/天
	AddCounter(LateFeeCollectedCentsTotal, 300)

	after := getCounterValue(t, LateFeeCollectedCentsTotal)
	if after-before != 300 {
		t.Errorf("逾期费累计错误: expected=300, got=%f", after-before)
	}
}

// TestReturnsCounterVec 测试带late标签的还书计数
func TestReturnsCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"late": "true"}
	before := getCounterVecValue(t, ReturnsTotal, labels)

	IncCounterVec(ReturnsTotal, labels)
	IncCounterVec(ReturnsTotal, map[string]string{"late": "false"})
	IncCounterVec(ReturnsTotal, labels)

	after := getCounterVecValue(t, ReturnsTotal, labels)
	if after-before != 2 {
		t.Errorf("CounterVec增量错误: expected=2, got=%f", after-before)
	}
}

// TestGauge 测试Gauge增减
func TestGauge(t *testing.T) {
	InitMetrics()

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	// Gauge可增可减，这里只验证调用不panic且可读取
	var m dto.Metric
	if err := HTTPRequestsInProgress.Write(&m); err != nil {
		t.Fatalf("读取Gauge失败: %v", err)
	}
}

// =========================================
// 辅助函数：读取指标当前值
// =========================================

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("读取Counter失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	var m dto.Metric
	if err := vec.With(labels).Write(&m); err != nil {
		t.Fatalf("读取CounterVec失败: %v", err)
	}
	return m.GetCounter().GetValue()
}
