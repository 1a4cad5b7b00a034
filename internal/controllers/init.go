// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责参数校验、DTO 转换和错误映射。
package controllers

import (
	"github.com/webcodur/feelandnote-services-recommend/internal/services"

	"github.com/google/wire"
)

// ProvideRecommendationServiceAPI adapts RecommendationService into RecommendationServiceAPI for dependency injection.
func ProvideRecommendationServiceAPI(s *services.RecommendationService) RecommendationServiceAPI { return s }

// ProviderSet collects controller constructors for Wire DI.
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	ProvideRecommendationServiceAPI,
	NewRecommendationHandler,
)
