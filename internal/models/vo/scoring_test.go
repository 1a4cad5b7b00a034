package vo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity_Range(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for total := 1; total <= 20; total++ {
			maxOverlap := n
			if total < n {
				maxOverlap = total
			}
			for overlap := 0; overlap <= maxOverlap; overlap++ {
				sim := CosineSimilarity(overlap, n, total)
				require.GreaterOrEqual(t, sim, 0.0)
				require.LessOrEqual(t, sim, 1.0)
			}
		}
	}
}

func TestCosineSimilarity_Symmetry(t *testing.T) {
	require.Equal(t, CosineSimilarity(3, 5, 12), CosineSimilarity(3, 12, 5))
	require.Equal(t, CosineSimilarity(1, 1, 100), CosineSimilarity(1, 100, 1))
}

func TestCosineSimilarity_MonotonicInOverlap(t *testing.T) {
	prev := CosineSimilarity(0, 10, 10)
	for overlap := 1; overlap <= 10; overlap++ {
		sim := CosineSimilarity(overlap, 10, 10)
		require.Greater(t, sim, prev)
		prev = sim
	}
}

func TestCosineSimilarity_ZeroSets(t *testing.T) {
	require.Equal(t, 0.0, CosineSimilarity(2, 0, 5))
	require.Equal(t, 0.0, CosineSimilarity(2, 5, 0))
	require.Equal(t, 0.0, CosineSimilarity(0, 5, 5))
}

func TestCosineSimilarity_KnownValues(t *testing.T) {
	// 目标 {A,B,C}，邻居 X={A,B,D}：2/sqrt(3*3)。
	require.InDelta(t, 2.0/3.0, CosineSimilarity(2, 3, 3), 1e-9)
	// 邻居 Y={A,E,F,G}：1/sqrt(3*4)。
	require.InDelta(t, 0.2886751, CosineSimilarity(1, 3, 4), 1e-6)
	// 完全重合。
	require.InDelta(t, 1.0, CosineSimilarity(5, 5, 5), 1e-9)
}

func TestScoreCandidates_DiscardsZeroTotal(t *testing.T) {
	id := uuid.New()
	scored := ScoreCandidates(3, []NeighborCandidate{
		{UserID: id, OverlapCount: 2, NeighborTotal: 3},
		{UserID: uuid.New(), OverlapCount: 1, NeighborTotal: 0},
	})
	require.Len(t, scored, 1)
	require.Equal(t, id, scored[0].UserID)
	require.InDelta(t, 2.0/3.0, scored[0].Similarity, 1e-9)
}

func TestRankCandidates_Deterministic(t *testing.T) {
	lo := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	hi := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	candidates := []ScoredCandidate{
		{UserID: hi, Similarity: 0.5, OverlapCount: 2},
		{UserID: lo, Similarity: 0.5, OverlapCount: 2},
		{UserID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Similarity: 0.9, OverlapCount: 1},
		{UserID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), Similarity: 0.5, OverlapCount: 5},
	}

	RankCandidates(candidates)

	require.Equal(t, 0.9, candidates[0].Similarity)
	// 相似度相同时重叠数优先。
	require.Equal(t, 5, candidates[1].OverlapCount)
	// 完全平手时 UserID 升序。
	require.Equal(t, lo, candidates[2].UserID)
	require.Equal(t, hi, candidates[3].UserID)
}

func TestTruncateCandidates(t *testing.T) {
	candidates := []ScoredCandidate{{}, {}, {}}
	require.Len(t, TruncateCandidates(candidates, 2), 2)
	require.Len(t, TruncateCandidates(candidates, 5), 3)
	require.Len(t, TruncateCandidates(candidates, 0), 3)
}
