package server

import (
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/conf"
	"github.com/webcodur/feelandnote-services-recommend/internal/controllers"
	"github.com/webcodur/feelandnote-services-recommend/internal/metrics"
	"github.com/webcodur/feelandnote-services-recommend/internal/services"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

// ProvideServiceOptions 由配置推导推荐解析参数，零值交给服务层补默认。
func ProvideServiceOptions(c *conf.Recommend) services.Options {
	if c == nil {
		return services.Options{}
	}
	return services.Options{
		FanOut:            c.FanOut,
		FallbackScanLimit: c.FallbackScanLimit,
		ConsumerCacheTTL:  time.Duration(c.ConsumerCacheTTLMS) * time.Millisecond,
	}
}

// ProvideHandlerTimeouts 由配置推导 Handler 超时预算。
func ProvideHandlerTimeouts(c *conf.Recommend) controllers.HandlerTimeouts {
	if c == nil || c.QueryTimeoutMS <= 0 {
		return controllers.HandlerTimeouts{}
	}
	return controllers.HandlerTimeouts{
		Query: time.Duration(c.QueryTimeoutMS) * time.Millisecond,
	}
}

// ProvideRegistry 构造独立的 Prometheus 注册表，避免默认全局注册表的冲突。
func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// ProvideRecommendationMetrics 在注册表上注册推荐指标。
func ProvideRecommendationMetrics(registry *prometheus.Registry) *metrics.RecommendationMetrics {
	return metrics.NewRecommendationMetrics(registry)
}

// ProviderSet collects server constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideServiceOptions,
	ProvideHandlerTimeouts,
	ProvideRegistry,
	ProvideRecommendationMetrics,
	NewHTTPServer,
)
