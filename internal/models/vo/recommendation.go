// Package vo 定义向上层返回的推荐视图对象。
package vo

import (
	"time"

	"github.com/google/uuid"
)

// 推荐结果的算法标识。
const (
	AlgorithmOverlap  = "overlap"
	AlgorithmFallback = "fallback"
)

// NeighborCandidate 表示候选索引产出的邻居：与目标用户存在至少一条重叠记录。
type NeighborCandidate struct {
	UserID        uuid.UUID
	OverlapCount  int
	NeighborTotal int
}

// ScoredCandidate 表示打分后的候选用户。
// Fallback 路径产出的候选 Similarity 与 OverlapCount 恒为 0，表示未建立口味匹配。
type ScoredCandidate struct {
	UserID        uuid.UUID
	Similarity    float64
	OverlapCount  int
	NeighborTotal int
}

// RecommendationResult 汇总一次推荐解析的返回数据。
type RecommendationResult struct {
	Candidates  []ScoredCandidate
	Algorithm   string
	GeneratedAt time.Time
}
