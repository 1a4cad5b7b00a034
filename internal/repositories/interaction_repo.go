package repositories

import (
	"context"
	"fmt"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"
	"github.com/webcodur/feelandnote-services-recommend/internal/repositories/mappers"
	"github.com/webcodur/feelandnote-services-recommend/internal/repositories/socialdb"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InteractionRepository 提供 social.interactions 的只读访问（Interaction Store）。
type InteractionRepository struct {
	db      *pgxpool.Pool
	queries *socialdb.Queries
	log     *log.Helper
}

// NewInteractionRepository 构造仓储实例。
func NewInteractionRepository(db *pgxpool.Pool, logger log.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:      db,
		queries: socialdb.New(db),
		log:     log.NewHelper(logger),
	}
}

// GetContentIDs 返回用户消费过的全部内容 ID。
func (r *InteractionRepository) GetContentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListUserContentIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user content ids: %w", err)
	}
	return ids, nil
}

// GetConsumers 返回消费过指定内容的全部用户 ID（倒排索引原语）。
func (r *InteractionRepository) GetConsumers(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListConsumersByContent(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("list consumers by content: %w", err)
	}
	return ids, nil
}

// CountByUsers 批量统计各用户的内容总量。
func (r *InteractionRepository) CountByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}
	rows, err := r.queries.CountInteractionsByUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("count interactions by users: %w", err)
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.UserID] = int(row.InteractionCount)
	}
	return counts, nil
}

// ListRecent 返回按时间倒序的近期活动记录，供 Fallback 路径扫描。
func (r *InteractionRepository) ListRecent(ctx context.Context, limit int) ([]*po.RecentInteraction, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.queries.ListRecentInteractions(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("list recent interactions: %w", err)
	}
	result := make([]*po.RecentInteraction, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.RecentInteractionFromRow(row))
	}
	return result, nil
}
