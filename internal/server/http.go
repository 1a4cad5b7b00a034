// Package server 组装 Kratos 传输层服务器与运行参数。
package server

import (
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/conf"
	"github.com/webcodur/feelandnote-services-recommend/internal/controllers"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPServer 构造 HTTP Server，注册推荐路由与指标端点。
func NewHTTPServer(c *conf.Server, handler *controllers.RecommendationHandler, registry *prometheus.Registry, logger log.Logger) *khttp.Server {
	opts := []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c != nil && c.HTTP != nil {
		if c.HTTP.Addr != "" {
			opts = append(opts, khttp.Address(c.HTTP.Addr))
		}
		if c.HTTP.TimeoutMS > 0 {
			opts = append(opts, khttp.Timeout(time.Duration(c.HTTP.TimeoutMS)*time.Millisecond))
		}
	}

	srv := khttp.NewServer(opts...)
	handler.RegisterRoutes(srv)
	srv.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return srv
}
