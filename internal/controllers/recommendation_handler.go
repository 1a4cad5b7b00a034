package controllers

import (
	"context"
	"errors"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/vo"
	"github.com/webcodur/feelandnote-services-recommend/internal/services"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

// defaultLimit 是未携带 limit 参数时的推荐条数。
const defaultLimit = 10

// RecommendationServiceAPI 定义 RecommendationHandler 依赖的 Service 能力。
type RecommendationServiceAPI interface {
	Resolve(ctx context.Context, input services.ResolveInput) (*vo.RecommendationResult, error)
}

// RecommendationHandler 暴露相似用户推荐的 HTTP 接口。
type RecommendationHandler struct {
	*BaseHandler
	service RecommendationServiceAPI
	log     *log.Helper
}

// NewRecommendationHandler 构造 RecommendationHandler。
func NewRecommendationHandler(service RecommendationServiceAPI, base *BaseHandler, logger log.Logger) *RecommendationHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &RecommendationHandler{
		BaseHandler: base,
		service:     service,
		log:         log.NewHelper(logger),
	}
}

// RegisterRoutes 将推荐路由挂载到 HTTP Server。
func (h *RecommendationHandler) RegisterRoutes(srv *khttp.Server) {
	route := srv.Route("/v1")
	route.GET("/recommendations/users", h.ListUserRecommendations)
}

type recommendedUser struct {
	UserID        string  `json:"user_id"`
	Similarity    float64 `json:"similarity"`
	OverlapCount  int     `json:"overlap_count"`
	NeighborTotal int     `json:"neighbor_total"`
}

type listUserRecommendationsResponse struct {
	Candidates  []recommendedUser `json:"candidates"`
	Algorithm   string            `json:"algorithm"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// ListUserRecommendations 返回与调用方口味相近的用户列表。
func (h *RecommendationHandler) ListUserRecommendations(ctx khttp.Context) error {
	meta := h.ExtractMetadata(ctx)
	if meta.InvalidUserInfo || meta.UserID == "" {
		return kerrors.Unauthorized("UNAUTHENTICATED", "invalid user info")
	}
	userID, err := uuid.Parse(meta.UserID)
	if err != nil {
		return kerrors.Unauthorized("UNAUTHENTICATED", "invalid user id")
	}

	query := ctx.Query()
	limit := defaultLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return kerrors.BadRequest("INVALID_ARGUMENT", "limit must be an integer")
		}
		limit = parsed
	}
	excludeFollowed := true
	if raw := query.Get("exclude_followed"); raw != "" {
		parsed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return kerrors.BadRequest("INVALID_ARGUMENT", "exclude_followed must be a boolean")
		}
		excludeFollowed = parsed
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	result, err := h.service.Resolve(timeoutCtx, services.ResolveInput{
		UserID:          userID,
		Limit:           limit,
		ExcludeFollowed: excludeFollowed,
	})
	if err != nil {
		return h.mapResolveError(ctx, err)
	}
	return ctx.Result(nethttp.StatusOK, toListUserRecommendationsResponse(result))
}

func (h *RecommendationHandler) mapResolveError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return kerrors.BadRequest("INVALID_ARGUMENT", err.Error())
	case errors.Is(err, services.ErrUnknownUser):
		return kerrors.NotFound("USER_NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		return kerrors.ServiceUnavailable("STORE_UNAVAILABLE", err.Error())
	case errors.Is(err, context.Canceled):
		return kerrors.ClientClosed("REQUEST_CANCELLED", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return kerrors.GatewayTimeout("REQUEST_TIMEOUT", err.Error())
	default:
		h.log.WithContext(ctx).Errorw("msg", "list user recommendations failed", "error", err)
		return kerrors.InternalServer("INTERNAL", "list user recommendations")
	}
}

func toListUserRecommendationsResponse(result *vo.RecommendationResult) *listUserRecommendationsResponse {
	if result == nil {
		return &listUserRecommendationsResponse{Candidates: []recommendedUser{}}
	}
	resp := &listUserRecommendationsResponse{
		Candidates: make([]recommendedUser, 0, len(result.Candidates)),
		Algorithm:  result.Algorithm,
	}
	if !result.GeneratedAt.IsZero() {
		resp.GeneratedAt = result.GeneratedAt.UTC()
	}
	for _, candidate := range result.Candidates {
		resp.Candidates = append(resp.Candidates, recommendedUser{
			UserID:        candidate.UserID.String(),
			Similarity:    candidate.Similarity,
			OverlapCount:  candidate.OverlapCount,
			NeighborTotal: candidate.NeighborTotal,
		})
	}
	return resp
}
