// Package po 定义推荐服务的数据持久化结构体。
package po

import "time"

// Interaction 表示一条内容消费记录。(UserID, ContentID) 具备集合语义，至多出现一次。
type Interaction struct {
	UserID      string
	ContentID   string
	ContentKind string
	OccurredAt  time.Time
}

// RecentInteraction 表示 Fallback 路径使用的近期活动记录，按时间倒序读取。
type RecentInteraction struct {
	UserID     string
	ContentID  string
	OccurredAt time.Time
}

// RecommendationLog 描述一次推荐解析的调用日志。
type RecommendationLog struct {
	LogID        string
	UserID       *string
	RequestLimit int32
	Algorithm    string
	LatencyMS    *int32
	Candidates   []RecommendedUserLog
	GeneratedAt  time.Time
}

// RecommendedUserLog 记录推荐结果中的单个候选。
type RecommendedUserLog struct {
	UserID        string  `json:"user_id"`
	Similarity    float64 `json:"similarity"`
	OverlapCount  int     `json:"overlap_count"`
	NeighborTotal int     `json:"neighbor_total"`
}
