package services

import (
	"context"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"

	"github.com/google/uuid"
)

// InteractionStore 抽象内容消费记录的读取能力（快照一致、只读）。
type InteractionStore interface {
	// GetContentIDs 返回用户消费过的全部内容 ID。
	GetContentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// GetConsumers 返回消费过指定内容的全部用户 ID。
	GetConsumers(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error)
	// CountByUsers 批量统计各用户的内容总量。
	CountByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error)
	// ListRecent 返回按时间倒序的近期活动记录。
	ListRecent(ctx context.Context, limit int) ([]*po.RecentInteraction, error)
}

// ExclusionStore 抽象拉黑与关注关系的读取能力。
type ExclusionStore interface {
	ListBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListFollowedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// ProfileStore 抽象用户档案的存在性校验。
type ProfileStore interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RecommendationLogStore 抽象推荐调用日志的写入能力。
type RecommendationLogStore interface {
	Insert(ctx context.Context, logEntry po.RecommendationLog) error
}
