// Package cache 提供按 key 合并并发查询并短暂缓存结果的工具。
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Coalescer 将同一 key 的并发查询合并为一次底层调用，并在 TTL 内复用结果。
// 底层存储的写路径需在变更时调用 Invalidate，否则只能依赖 TTL 过期。
type Coalescer[V any] struct {
	group   singleflight.Group
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// New 构造 Coalescer。ttl 必须为正。
func New[V any](ttl time.Duration) *Coalescer[V] {
	return &Coalescer[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
	}
}

// Do 返回 key 对应的缓存值；缓存缺失或过期时调用 fn，并发调用只触发一次 fn。
func (c *Coalescer[V]) Do(ctx context.Context, key string, fn func(context.Context) (V, error)) (V, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(cached.expiresAt) {
		return cached.value, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry[V]{value: value, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// Invalidate 删除指定 key 的缓存条目。
func (c *Coalescer[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len 返回当前缓存条目数（含已过期未清理的条目）。
func (c *Coalescer[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
