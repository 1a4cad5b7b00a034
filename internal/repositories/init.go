// Package repositories 提供对 social 模式各数据表的访问实现。
package repositories

import "github.com/google/wire"

// ProviderSet collects repository constructors for Wire DI.
var ProviderSet = wire.NewSet(
	NewPgxPool,
	NewInteractionRepository,
	NewExclusionRepository,
	NewProfileRepository,
	NewRecommendationLogRepository,
)
