package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRecommendationLogRepositoryIntegration_InsertAndGet(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newRecommendationLogRepo()

	caller := uuid.New()
	neighbor := uuid.New()
	generatedAt := time.Now().UTC().Truncate(time.Millisecond)

	entry := po.RecommendationLog{
		UserID:       stringPtr(caller.String()),
		RequestLimit: 10,
		Algorithm:    "overlap",
		LatencyMS:    int32Ptr(45),
		Candidates: []po.RecommendedUserLog{
			{UserID: neighbor.String(), Similarity: 0.5, OverlapCount: 3, NeighborTotal: 12},
		},
		GeneratedAt: generatedAt,
	}
	require.NoError(t, repo.Insert(ctx, entry))

	var logID uuid.UUID
	require.NoError(t, testPool.QueryRow(ctx, `SELECT log_id FROM social.recommendation_logs`).Scan(&logID))

	stored, err := repo.GetByID(ctx, logID)
	require.NoError(t, err)
	require.NotNil(t, stored.UserID)
	require.Equal(t, caller.String(), *stored.UserID)
	require.Equal(t, int32(10), stored.RequestLimit)
	require.Equal(t, "overlap", stored.Algorithm)
	require.NotNil(t, stored.LatencyMS)
	require.Equal(t, int32(45), *stored.LatencyMS)
	require.Len(t, stored.Candidates, 1)
	require.Equal(t, neighbor.String(), stored.Candidates[0].UserID)
	require.InDelta(t, 0.5, stored.Candidates[0].Similarity, 1e-9)
	require.True(t, generatedAt.Equal(stored.GeneratedAt))
}

func TestRecommendationLogRepositoryIntegration_Defaults(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newRecommendationLogRepo()

	// 匿名调用、无候选、无耗时，generated_at 交给数据库默认值。
	entry := po.RecommendationLog{
		RequestLimit: 5,
		Algorithm:    "fallback",
	}
	require.NoError(t, repo.Insert(ctx, entry))

	var logID uuid.UUID
	require.NoError(t, testPool.QueryRow(ctx, `SELECT log_id FROM social.recommendation_logs`).Scan(&logID))

	stored, err := repo.GetByID(ctx, logID)
	require.NoError(t, err)
	require.Nil(t, stored.UserID)
	require.Nil(t, stored.LatencyMS)
	require.Equal(t, "fallback", stored.Algorithm)
	require.Empty(t, stored.Candidates)
	require.False(t, stored.GeneratedAt.IsZero())
}
