// Package mappers 提供数据库行与领域模型之间的转换工具。
package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"
	"github.com/webcodur/feelandnote-services-recommend/internal/repositories/socialdb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// RecentInteractionFromRow 将近期活动行转换为领域对象。
func RecentInteractionFromRow(row socialdb.ListRecentInteractionsRow) *po.RecentInteraction {
	return &po.RecentInteraction{
		UserID:     row.UserID.String(),
		ContentID:  row.ContentID.String(),
		OccurredAt: mustTimestamp(row.OccurredAt),
	}
}

// RecommendationLogFromRow 转换推荐日志。
func RecommendationLogFromRow(row socialdb.SocialRecommendationLog) (*po.RecommendationLog, error) {
	var candidates []po.RecommendedUserLog
	if len(row.Candidates) > 0 {
		if err := json.Unmarshal(row.Candidates, &candidates); err != nil {
			return nil, fmt.Errorf("unmarshal candidates: %w", err)
		}
	}
	return &po.RecommendationLog{
		LogID:        row.LogID.String(),
		UserID:       uuidPtr(row.UserID),
		RequestLimit: row.RequestLimit,
		Algorithm:    row.Algorithm,
		LatencyMS:    int4Ptr(row.LatencyMs),
		Candidates:   candidates,
		GeneratedAt:  mustTimestamp(row.GeneratedAt),
	}, nil
}

// ToPgInt4 将 *int32 转换为 pgtype.Int4。
func ToPgInt4(value *int32) pgtype.Int4 {
	if value == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *value, Valid: true}
}

// ToPgUUID 将 *string 解析为 pgtype.UUID，空值返回 NULL。
func ToPgUUID(value *string) (pgtype.UUID, error) {
	if value == nil {
		return pgtype.UUID{}, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("parse uuid: %w", err)
	}
	return pgtype.UUID{Bytes: id, Valid: true}, nil
}

// ToPgTimestamptzPtr 将 *time.Time 转换为 pgtype.Timestamptz。
func ToPgTimestamptzPtr(value *time.Time) pgtype.Timestamptz {
	if value == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: value.UTC(), Valid: true}
}

func int4Ptr(value pgtype.Int4) *int32 {
	if !value.Valid {
		return nil
	}
	return &value.Int32
}

func uuidPtr(value pgtype.UUID) *string {
	if !value.Valid {
		return nil
	}
	id := uuid.UUID(value.Bytes).String()
	return &id
}

func mustTimestamp(value pgtype.Timestamptz) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return value.Time.UTC()
}
