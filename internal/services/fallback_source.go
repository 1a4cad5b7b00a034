package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/vo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// FallbackSource 在主路径产出零候选时，基于近期跨用户活动生成次级候选。
// 产出的候选 Similarity 与 OverlapCount 恒为 0：它们只是“近期活跃”，不是口味匹配。
type FallbackSource struct {
	store     InteractionStore
	scanLimit int
	log       *log.Helper
}

// NewFallbackSource 构造 Fallback 候选源。
func NewFallbackSource(store InteractionStore, opts Options, logger log.Logger) *FallbackSource {
	return &FallbackSource{
		store:     store,
		scanLimit: opts.fallbackScanLimit(),
		log:       log.NewHelper(logger),
	}
}

// FallbackInput 描述 Fallback 候选生成的参数。
// Excluded 为分组前生效的排除集（目标用户自身由 UserID 单独排除）。
type FallbackInput struct {
	UserID   uuid.UUID
	Limit    int
	Excluded map[uuid.UUID]struct{}
}

type activityBucket struct {
	count  int
	latest time.Time
}

// Recent 扫描近期活动，按用户分组计数，排除后按贡献数降序、最近活动优先排序并截断。
// 排除发生在截断之前，被拉黑用户不会无声压低可见结果数。
func (s *FallbackSource) Recent(ctx context.Context, input FallbackInput) ([]vo.ScoredCandidate, error) {
	rows, err := s.store.ListRecent(ctx, s.scanLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent interactions: %w", err)
	}

	buckets := make(map[uuid.UUID]*activityBucket)
	for _, row := range rows {
		userID, parseErr := uuid.Parse(row.UserID)
		if parseErr != nil {
			s.log.WithContext(ctx).Warnw("msg", "skip recent interaction with invalid user id", "user_id", row.UserID)
			continue
		}
		if userID == input.UserID {
			continue
		}
		if _, excluded := input.Excluded[userID]; excluded {
			continue
		}
		bucket, ok := buckets[userID]
		if !ok {
			bucket = &activityBucket{latest: row.OccurredAt}
			buckets[userID] = bucket
		}
		bucket.count++
		if row.OccurredAt.After(bucket.latest) {
			bucket.latest = row.OccurredAt
		}
	}
	if len(buckets) == 0 {
		return nil, nil
	}

	userIDs := make([]uuid.UUID, 0, len(buckets))
	for id := range buckets {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		a, b := buckets[userIDs[i]], buckets[userIDs[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		if !a.latest.Equal(b.latest) {
			return a.latest.After(b.latest)
		}
		return userIDs[i].String() < userIDs[j].String()
	})

	if input.Limit > 0 && len(userIDs) > input.Limit {
		userIDs = userIDs[:input.Limit]
	}

	candidates := make([]vo.ScoredCandidate, 0, len(userIDs))
	for _, id := range userIDs {
		candidates = append(candidates, vo.ScoredCandidate{UserID: id})
	}
	return candidates, nil
}
