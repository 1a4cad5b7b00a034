package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/metrics"
	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"
	"github.com/webcodur/feelandnote-services-recommend/internal/models/vo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// ResolveInput 描述一次推荐解析的参数。
type ResolveInput struct {
	UserID uuid.UUID
	Limit  int
	// ExcludeFollowed 为 true 时，Fallback 路径排除目标用户已关注的用户。
	// 该行为是产品策略而非算法约束，保持可配置。
	ExcludeFollowed bool
}

// RecommendationService 是口味相似推荐的主用例：主路径为重叠度匹配，
// 无候选时回退到近期活跃度。调用间无共享可变状态，可完全并行。
type RecommendationService struct {
	profiles     ProfileStore
	interactions InteractionStore
	exclusions   ExclusionStore
	index        *CandidateIndex
	fallback     *FallbackSource
	logs         RecommendationLogStore
	metrics      *metrics.RecommendationMetrics
	log          *log.Helper
}

// NewRecommendationService 构造 RecommendationService。
func NewRecommendationService(
	profiles ProfileStore,
	interactions InteractionStore,
	exclusions ExclusionStore,
	index *CandidateIndex,
	fallback *FallbackSource,
	logs RecommendationLogStore,
	m *metrics.RecommendationMetrics,
	logger log.Logger,
) *RecommendationService {
	return &RecommendationService{
		profiles:     profiles,
		interactions: interactions,
		exclusions:   exclusions,
		index:        index,
		fallback:     fallback,
		logs:         logs,
		metrics:      m,
		log:          log.NewHelper(logger),
	}
}

// Resolve 返回目标用户的推荐候选。
// 排除过滤发生在截断之前：主路径在排序前过滤，Fallback 在分组前过滤，
// 被拉黑用户不会无声压低可见结果数。
func (s *RecommendationService) Resolve(ctx context.Context, input ResolveInput) (*vo.RecommendationResult, error) {
	started := time.Now()
	algorithm := "none"
	outcome := metrics.OutcomeError
	defer func() {
		s.metrics.ObserveResolve(algorithm, outcome, time.Since(started))
	}()

	if input.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d: %w", input.Limit, ErrInvalidArgument)
	}
	limit := input.Limit
	if limit > maxLimit {
		limit = maxLimit
	}

	exists, err := s.profiles.Exists(ctx, input.UserID)
	if err != nil {
		return nil, s.storeFailure(ctx, "check user", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", input.UserID, ErrUnknownUser)
	}

	contentIDs, err := s.interactions.GetContentIDs(ctx, input.UserID)
	if err != nil {
		return nil, s.storeFailure(ctx, "load content ids", err)
	}

	blocked, err := s.exclusions.ListBlockedIDs(ctx, input.UserID)
	if err != nil {
		return nil, s.storeFailure(ctx, "load blocked ids", err)
	}
	blockedSet := toSet(blocked)

	neighbors, err := s.index.Build(ctx, input.UserID, contentIDs)
	if err != nil {
		return nil, s.storeFailure(ctx, "build candidate index", err)
	}

	result := &vo.RecommendationResult{GeneratedAt: time.Now().UTC()}
	if len(neighbors) == 0 {
		excluded := blockedSet
		if input.ExcludeFollowed {
			followed, followErr := s.exclusions.ListFollowedIDs(ctx, input.UserID)
			if followErr != nil {
				return nil, s.storeFailure(ctx, "load followed ids", followErr)
			}
			for _, id := range followed {
				excluded[id] = struct{}{}
			}
		}
		candidates, fallbackErr := s.fallback.Recent(ctx, FallbackInput{
			UserID:   input.UserID,
			Limit:    limit,
			Excluded: excluded,
		})
		if fallbackErr != nil {
			return nil, s.storeFailure(ctx, "scan fallback candidates", fallbackErr)
		}
		result.Candidates = candidates
		result.Algorithm = vo.AlgorithmFallback
	} else {
		kept := make([]vo.NeighborCandidate, 0, len(neighbors))
		for _, neighbor := range neighbors {
			if _, isBlocked := blockedSet[neighbor.UserID]; isBlocked {
				continue
			}
			kept = append(kept, neighbor)
		}
		scored := vo.ScoreCandidates(len(contentIDs), kept)
		vo.RankCandidates(scored)
		result.Candidates = vo.TruncateCandidates(scored, limit)
		result.Algorithm = vo.AlgorithmOverlap
	}
	if result.Candidates == nil {
		result.Candidates = []vo.ScoredCandidate{}
	}

	algorithm = result.Algorithm
	outcome = metrics.OutcomeOK
	elapsed := time.Since(started)
	s.writeLog(ctx, input, limit, result, elapsed)
	return result, nil
}

// storeFailure 将存储错误归类：取消原样上抛，其余折叠为 ErrStoreUnavailable。
// 空结果绝不用于掩盖“无法查询”。
func (s *RecommendationService) storeFailure(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.WithContext(ctx).Errorw("msg", op+" failed", "error", err)
	return fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
}

// writeLog 尽力写入调用日志，失败只告警，不影响本次解析结果。
func (s *RecommendationService) writeLog(ctx context.Context, input ResolveInput, limit int, result *vo.RecommendationResult, elapsed time.Duration) {
	if s.logs == nil {
		return
	}
	items := make([]po.RecommendedUserLog, 0, len(result.Candidates))
	for _, candidate := range result.Candidates {
		items = append(items, po.RecommendedUserLog{
			UserID:        candidate.UserID.String(),
			Similarity:    candidate.Similarity,
			OverlapCount:  candidate.OverlapCount,
			NeighborTotal: candidate.NeighborTotal,
		})
	}
	entry := po.NewRecommendationLog(po.RecommendationLogParams{
		UserID:       input.UserID.String(),
		RequestLimit: limit,
		Algorithm:    result.Algorithm,
		LatencyMS:    int32(elapsed.Milliseconds()),
		Candidates:   items,
		GeneratedAt:  result.GeneratedAt,
	})
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.logs.Insert(logCtx, entry); err != nil {
		s.log.WithContext(ctx).Warnw("msg", "insert recommendation log failed", "error", err)
	}
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

var _ RecommendationServiceInterface = (*RecommendationService)(nil)
