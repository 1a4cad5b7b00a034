package services

import (
	"context"

	"github.com/webcodur/feelandnote-services-recommend/internal/cache"
	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"

	"github.com/google/uuid"
)

// CoalescedInteractionStore 对消费者集合查询做按 key 合并与短 TTL 缓存。
// 候选索引扇出时同一热门内容会被多个并发解析命中，合并后底层只打一次。
// 其余读路径不缓存，保持单次解析内的快照语义。
type CoalescedInteractionStore struct {
	inner     InteractionStore
	consumers *cache.Coalescer[[]uuid.UUID]
}

// NewCoalescedInteractionStore 用合并缓存包装底层存储。
func NewCoalescedInteractionStore(inner InteractionStore, opts Options) *CoalescedInteractionStore {
	return &CoalescedInteractionStore{
		inner:     inner,
		consumers: cache.New[[]uuid.UUID](opts.ConsumerCacheTTL),
	}
}

// GetContentIDs 直接透传。
func (s *CoalescedInteractionStore) GetContentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.inner.GetContentIDs(ctx, userID)
}

// GetConsumers 经由合并缓存读取。
func (s *CoalescedInteractionStore) GetConsumers(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error) {
	return s.consumers.Do(ctx, contentID.String(), func(ctx context.Context) ([]uuid.UUID, error) {
		return s.inner.GetConsumers(ctx, contentID)
	})
}

// CountByUsers 直接透传。
func (s *CoalescedInteractionStore) CountByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	return s.inner.CountByUsers(ctx, userIDs)
}

// ListRecent 直接透传。
func (s *CoalescedInteractionStore) ListRecent(ctx context.Context, limit int) ([]*po.RecentInteraction, error) {
	return s.inner.ListRecent(ctx, limit)
}

var _ InteractionStore = (*CoalescedInteractionStore)(nil)
