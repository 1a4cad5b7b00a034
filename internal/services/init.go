// Package services 实现推荐解析用例：候选索引、打分排序与 Fallback 编排。
package services

import (
	"github.com/webcodur/feelandnote-services-recommend/internal/repositories"

	"github.com/google/wire"
)

// ProvideInteractionStore 按配置决定是否为消费者集合查询启用合并缓存。
func ProvideInteractionStore(repo *repositories.InteractionRepository, opts Options) InteractionStore {
	if opts.ConsumerCacheTTL > 0 {
		return NewCoalescedInteractionStore(repo, opts)
	}
	return repo
}

// ProvideExclusionStore adapts ExclusionRepository for dependency injection.
func ProvideExclusionStore(repo *repositories.ExclusionRepository) ExclusionStore { return repo }

// ProvideProfileStore adapts ProfileRepository for dependency injection.
func ProvideProfileStore(repo *repositories.ProfileRepository) ProfileStore { return repo }

// ProvideRecommendationLogStore adapts RecommendationLogRepository for dependency injection.
func ProvideRecommendationLogStore(repo *repositories.RecommendationLogRepository) RecommendationLogStore {
	return repo
}

// ProviderSet collects service constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideInteractionStore,
	ProvideExclusionStore,
	ProvideProfileStore,
	ProvideRecommendationLogStore,
	NewCandidateIndex,
	NewFallbackSource,
	NewRecommendationService,
)
