package po

import (
	"strings"
	"time"
)

// RecommendationLogParams 描述构造推荐日志所需的参数。
type RecommendationLogParams struct {
	UserID       string
	RequestLimit int
	Algorithm    string
	LatencyMS    int32
	Candidates   []RecommendedUserLog
	GeneratedAt  time.Time
}

// NewRecommendationLog 基于参数构造 RecommendationLog 实例。
func NewRecommendationLog(params RecommendationLogParams) RecommendationLog {
	entry := RecommendationLog{
		UserID:       optionalString(params.UserID),
		RequestLimit: int32(params.RequestLimit),
		Algorithm:    strings.TrimSpace(params.Algorithm),
		LatencyMS:    optionalInt32(params.LatencyMS),
		Candidates:   cloneCandidates(params.Candidates),
		GeneratedAt:  params.GeneratedAt,
	}
	if entry.GeneratedAt.IsZero() {
		entry.GeneratedAt = time.Now().UTC()
	}
	return entry
}

func cloneCandidates(src []RecommendedUserLog) []RecommendedUserLog {
	if len(src) == 0 {
		return []RecommendedUserLog{}
	}
	dst := make([]RecommendedUserLog, len(src))
	copy(dst, src)
	return dst
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalInt32(value int32) *int32 {
	if value <= 0 {
		return nil
	}
	v := value
	return &v
}
