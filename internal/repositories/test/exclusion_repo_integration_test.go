package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestExclusionRepositoryIntegration_Blocks(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newExclusionRepo()

	target := uuid.New()
	blockedByTarget := uuid.New()
	blockerOfTarget := uuid.New()
	unrelated := uuid.New()

	seedBlock(t, target, blockedByTarget)
	seedBlock(t, blockerOfTarget, target)
	seedBlock(t, unrelated, uuid.New())

	// 两个方向的拉黑关系都要排除。
	ids, err := repo.ListBlockedIDs(ctx, target)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{blockedByTarget, blockerOfTarget}, ids)

	blocked, err := repo.IsBlocked(ctx, target, blockedByTarget)
	require.NoError(t, err)
	require.True(t, blocked)

	blocked, err = repo.IsBlocked(ctx, target, blockerOfTarget)
	require.NoError(t, err)
	require.True(t, blocked)

	blocked, err = repo.IsBlocked(ctx, target, unrelated)
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestExclusionRepositoryIntegration_Follows(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newExclusionRepo()

	follower := uuid.New()
	followee := uuid.New()
	fan := uuid.New()

	seedFollow(t, follower, followee)
	seedFollow(t, fan, follower)

	ids, err := repo.ListFollowedIDs(ctx, follower)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{followee}, ids)

	following, err := repo.IsFollowing(ctx, follower, followee)
	require.NoError(t, err)
	require.True(t, following)

	// 关注是有向关系，反向不成立。
	following, err = repo.IsFollowing(ctx, followee, follower)
	require.NoError(t, err)
	require.False(t, following)
}

func TestProfileRepositoryIntegration_Exists(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newProfileRepo()

	known := uuid.New()
	seedUser(t, known)

	exists, err := repo.Exists(ctx, known)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	require.False(t, exists)
}
