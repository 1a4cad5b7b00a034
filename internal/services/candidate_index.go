package services

import (
	"context"
	"fmt"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/vo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CandidateIndex 基于倒排索引扇出构建邻居候选集：
// 对目标用户的每个内容 ID 查询其消费用户集合，按用户累加重叠计数。
// 代价正比于各内容的消费者数量之和，远低于全量用户两两比较。
type CandidateIndex struct {
	store  InteractionStore
	fanOut int
	log    *log.Helper
}

// NewCandidateIndex 构造候选索引。
func NewCandidateIndex(store InteractionStore, opts Options, logger log.Logger) *CandidateIndex {
	return &CandidateIndex{
		store:  store,
		fanOut: opts.fanOut(),
		log:    log.NewHelper(logger),
	}
}

// Build 返回与目标用户至少重叠一条记录的全部邻居，附带重叠数与邻居内容总量。
// contentIDs 为空时直接返回空集。取消发生时返回错误而非部分结果：
// 部分候选集不可用于排序，否则会偏向先完成查询的邻居。
func (ci *CandidateIndex) Build(ctx context.Context, userID uuid.UUID, contentIDs []uuid.UUID) ([]vo.NeighborCandidate, error) {
	if len(contentIDs) == 0 {
		return nil, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ci.fanOut)
	results := make(chan []uuid.UUID, len(contentIDs))

	for _, contentID := range contentIDs {
		contentID := contentID
		g.Go(func() error {
			consumers, err := ci.store.GetConsumers(gctx, contentID)
			if err != nil {
				return fmt.Errorf("get consumers for %s: %w", contentID, err)
			}
			results <- consumers
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(results)
	}()

	// 累加 map 由当前 goroutine 独占，扇出结果经 channel 汇入，计数精确。
	overlap := make(map[uuid.UUID]int)
	for consumers := range results {
		for _, consumer := range consumers {
			if consumer == userID {
				// 目标用户不进入自己的候选集。
				continue
			}
			overlap[consumer]++
		}
	}
	if err := <-done; err != nil {
		return nil, err
	}
	if len(overlap) == 0 {
		return nil, nil
	}

	neighborIDs := make([]uuid.UUID, 0, len(overlap))
	for id := range overlap {
		neighborIDs = append(neighborIDs, id)
	}
	totals, err := ci.store.CountByUsers(ctx, neighborIDs)
	if err != nil {
		return nil, fmt.Errorf("count neighbor totals: %w", err)
	}

	neighbors := make([]vo.NeighborCandidate, 0, len(overlap))
	for id, count := range overlap {
		neighbors = append(neighbors, vo.NeighborCandidate{
			UserID:        id,
			OverlapCount:  count,
			NeighborTotal: totals[id],
		})
	}
	return neighbors, nil
}
