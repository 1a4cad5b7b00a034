// Package conf 定义服务启动所需的配置结构，由 Kratos config 扫描填充。
package conf

// Bootstrap 是配置文件的顶层结构。
type Bootstrap struct {
	Server    *Server    `json:"server"`
	Data      *Data      `json:"data"`
	Recommend *Recommend `json:"recommend"`
}

// Server 汇总传输层配置。
type Server struct {
	HTTP *HTTPServer `json:"http"`
}

// HTTPServer 配置 HTTP 监听地址与请求超时。
type HTTPServer struct {
	Addr      string `json:"addr"`
	TimeoutMS int64  `json:"timeout_ms"`
}

// Data 汇总数据层配置。
type Data struct {
	Database *Database `json:"database"`
}

// Database 配置 PostgreSQL 连接。
type Database struct {
	DSN      string `json:"dsn"`
	MaxConns int32  `json:"max_conns"`
}

// Recommend 配置推荐解析的运行参数。
type Recommend struct {
	// FanOut 是候选索引并发扇出的上限。
	FanOut int `json:"fan_out"`
	// FallbackScanLimit 是 Fallback 路径扫描的近期活动行数。
	FallbackScanLimit int `json:"fallback_scan_limit"`
	// ConsumerCacheTTLMS 大于 0 时对消费者集合查询启用合并缓存。
	ConsumerCacheTTLMS int64 `json:"consumer_cache_ttl_ms"`
	// QueryTimeoutMS 是查询类 Handler 的超时预算。
	QueryTimeoutMS int64 `json:"query_timeout_ms"`
}
