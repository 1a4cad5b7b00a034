package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"
	"github.com/webcodur/feelandnote-services-recommend/internal/repositories/mappers"
	"github.com/webcodur/feelandnote-services-recommend/internal/repositories/socialdb"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecommendationLogRepository 负责推荐调用日志持久化。
type RecommendationLogRepository struct {
	db      *pgxpool.Pool
	queries *socialdb.Queries
	log     *log.Helper
}

// NewRecommendationLogRepository 构造仓储实例。
func NewRecommendationLogRepository(db *pgxpool.Pool, logger log.Logger) *RecommendationLogRepository {
	return &RecommendationLogRepository{
		db:      db,
		queries: socialdb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Insert 写入推荐日志。
func (r *RecommendationLogRepository) Insert(ctx context.Context, logEntry po.RecommendationLog) error {
	candidates := logEntry.Candidates
	if candidates == nil {
		candidates = []po.RecommendedUserLog{}
	}
	payload, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}
	userID, err := mappers.ToPgUUID(logEntry.UserID)
	if err != nil {
		return fmt.Errorf("parse user_id: %w", err)
	}
	var generatedAt *time.Time
	if !logEntry.GeneratedAt.IsZero() {
		gt := logEntry.GeneratedAt.UTC()
		generatedAt = &gt
	}
	params := socialdb.InsertRecommendationLogParams{
		UserID:       userID,
		RequestLimit: logEntry.RequestLimit,
		Algorithm:    logEntry.Algorithm,
		LatencyMs:    mappers.ToPgInt4(logEntry.LatencyMS),
		Candidates:   payload,
		GeneratedAt:  mappers.ToPgTimestamptzPtr(generatedAt),
	}
	if err := r.queries.InsertRecommendationLog(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert recommendation log failed", "error", err)
		return fmt.Errorf("insert recommendation log: %w", err)
	}
	return nil
}

// GetByID 按 log_id 查询推荐日志。
func (r *RecommendationLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*po.RecommendationLog, error) {
	row, err := r.queries.GetRecommendationLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recommendation log: %w", err)
	}
	return mappers.RecommendationLogFromRow(row)
}
