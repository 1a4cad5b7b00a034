package services

import (
	"context"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/vo"
)

// RecommendationServiceInterface 抽象推荐解析用例，便于测试替换。
type RecommendationServiceInterface interface {
	Resolve(ctx context.Context, input ResolveInput) (*vo.RecommendationResult, error)
}
