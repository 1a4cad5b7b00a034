// Package metrics 定义推荐服务的 Prometheus 指标。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 指标结果标签值。
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// RecommendationMetrics 汇总推荐解析相关的采集器。
type RecommendationMetrics struct {
	resolveTotal    *prometheus.CounterVec
	resolveDuration *prometheus.HistogramVec
}

// NewRecommendationMetrics 注册并返回指标集合。
func NewRecommendationMetrics(reg prometheus.Registerer) *RecommendationMetrics {
	factory := promauto.With(reg)
	return &RecommendationMetrics{
		resolveTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recommend",
			Name:      "resolve_total",
			Help:      "Total recommendation resolutions by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		resolveDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recommend",
			Name:      "resolve_duration_seconds",
			Help:      "Recommendation resolution latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}
}

// ObserveResolve 记录一次解析结果。
func (m *RecommendationMetrics) ObserveResolve(algorithm, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.resolveTotal.WithLabelValues(algorithm, outcome).Inc()
	m.resolveDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}
