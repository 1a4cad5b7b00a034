package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestInteractionRepositoryIntegration_ContentAndConsumers(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newInteractionRepo()

	alice := uuid.New()
	bob := uuid.New()
	contentA := uuid.New()
	contentB := uuid.New()
	now := time.Now().UTC()

	seedInteraction(t, alice, contentA, now)
	seedInteraction(t, alice, contentB, now)
	seedInteraction(t, bob, contentA, now)

	contentIDs, err := repo.GetContentIDs(ctx, alice)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{contentA, contentB}, contentIDs)

	consumers, err := repo.GetConsumers(ctx, contentA)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{alice, bob}, consumers)

	consumers, err = repo.GetConsumers(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, consumers)
}

func TestInteractionRepositoryIntegration_CountByUsers(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newInteractionRepo()

	alice := uuid.New()
	bob := uuid.New()
	idle := uuid.New()
	now := time.Now().UTC()

	seedInteraction(t, alice, uuid.New(), now)
	seedInteraction(t, alice, uuid.New(), now)
	seedInteraction(t, bob, uuid.New(), now)

	counts, err := repo.CountByUsers(ctx, []uuid.UUID{alice, bob, idle})
	require.NoError(t, err)
	require.Equal(t, 2, counts[alice])
	require.Equal(t, 1, counts[bob])
	// 无活动的用户不会出现在结果中。
	require.NotContains(t, counts, idle)

	counts, err = repo.CountByUsers(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestInteractionRepositoryIntegration_ListRecent(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newInteractionRepo()

	alice := uuid.New()
	bob := uuid.New()
	base := time.Now().UTC().Truncate(time.Millisecond)

	seedInteraction(t, alice, uuid.New(), base.Add(-2*time.Hour))
	seedInteraction(t, bob, uuid.New(), base.Add(-time.Hour))
	seedInteraction(t, alice, uuid.New(), base)

	rows, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// 按时间倒序截断。
	require.Equal(t, alice.String(), rows[0].UserID)
	require.Equal(t, bob.String(), rows[1].UserID)
	require.True(t, rows[0].OccurredAt.After(rows[1].OccurredAt))

	rows, err = repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, rows)
}
