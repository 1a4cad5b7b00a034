package services

import "time"

// 默认参数。limit 超出 maxLimit 时钳制而非拒绝。
const (
	defaultLimit             = 10
	maxLimit                 = 100
	defaultFanOut            = 8
	defaultFallbackScanLimit = 500
)

// Options 汇总推荐解析的可调参数，由配置层提供。
type Options struct {
	// FanOut 是候选索引并发扇出的上限。
	FanOut int
	// FallbackScanLimit 是 Fallback 路径扫描的近期活动行数。
	FallbackScanLimit int
	// ConsumerCacheTTL 大于 0 时，对消费者集合查询启用合并缓存。
	ConsumerCacheTTL time.Duration
}

func (o Options) fanOut() int {
	if o.FanOut <= 0 {
		return defaultFanOut
	}
	return o.FanOut
}

func (o Options) fallbackScanLimit() int {
	if o.FallbackScanLimit <= 0 {
		return defaultFallbackScanLimit
	}
	return o.FallbackScanLimit
}
