package vo

import (
	"math"
	"sort"
)

// CosineSimilarity 计算二值内容向量间的余弦相似度：overlap / sqrt(n * total)。
// 对集合大小做几何平均归一化，结果钳制在 [0, 1]。
// 任一集合为空时返回 0，调用方据此丢弃该候选，不会出现除零。
func CosineSimilarity(overlap, targetTotal, neighborTotal int) float64 {
	if overlap <= 0 || targetTotal <= 0 || neighborTotal <= 0 {
		return 0
	}
	sim := float64(overlap) / math.Sqrt(float64(targetTotal)*float64(neighborTotal))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// ScoreCandidates 将邻居候选转换为打分候选。NeighborTotal 为 0 的条目直接丢弃。
func ScoreCandidates(targetTotal int, neighbors []NeighborCandidate) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(neighbors))
	for _, n := range neighbors {
		if n.NeighborTotal <= 0 {
			continue
		}
		scored = append(scored, ScoredCandidate{
			UserID:        n.UserID,
			Similarity:    CosineSimilarity(n.OverlapCount, targetTotal, n.NeighborTotal),
			OverlapCount:  n.OverlapCount,
			NeighborTotal: n.NeighborTotal,
		})
	}
	return scored
}

// RankCandidates 原地排序：相似度降序，重叠数降序，最后按 UserID 升序。
// 末级比较保证相同存储状态下输出字节级一致，分页与测试可复现。
func RankCandidates(candidates []ScoredCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.OverlapCount != b.OverlapCount {
			return a.OverlapCount > b.OverlapCount
		}
		return a.UserID.String() < b.UserID.String()
	})
}

// TruncateCandidates 截断候选列表到 limit，不修改顺序。
func TruncateCandidates(candidates []ScoredCandidate, limit int) []ScoredCandidate {
	if limit > 0 && len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
