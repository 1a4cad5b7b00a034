package repositories

import (
	"context"
	"fmt"

	"github.com/webcodur/feelandnote-services-recommend/internal/repositories/socialdb"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExclusionRepository 提供拉黑与关注关系的只读访问（Exclusion Store）。
type ExclusionRepository struct {
	db      *pgxpool.Pool
	queries *socialdb.Queries
	log     *log.Helper
}

// NewExclusionRepository 构造仓储实例。
func NewExclusionRepository(db *pgxpool.Pool, logger log.Logger) *ExclusionRepository {
	return &ExclusionRepository{
		db:      db,
		queries: socialdb.New(db),
		log:     log.NewHelper(logger),
	}
}

// ListBlockedIDs 返回与目标用户存在任一方向拉黑关系的用户 ID。
func (r *ExclusionRepository) ListBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListBlockedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list blocked user ids: %w", err)
	}
	return ids, nil
}

// ListFollowedIDs 返回目标用户关注的用户 ID。
func (r *ExclusionRepository) ListFollowedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListFollowedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list followed user ids: %w", err)
	}
	return ids, nil
}

// IsBlocked 判断两个用户间是否存在任一方向的拉黑关系。
func (r *ExclusionRepository) IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	blocked, err := r.queries.IsBlockedPair(ctx, socialdb.IsBlockedPairParams{UserA: userA, UserB: userB})
	if err != nil {
		return false, fmt.Errorf("is blocked pair: %w", err)
	}
	return blocked, nil
}

// IsFollowing 判断 follower 是否关注 followee。
func (r *ExclusionRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	following, err := r.queries.IsFollowing(ctx, socialdb.IsFollowingParams{FollowerID: followerID, FolloweeID: followeeID})
	if err != nil {
		return false, fmt.Errorf("is following: %w", err)
	}
	return following, nil
}
