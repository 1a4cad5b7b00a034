package repositories

import (
	"context"
	"fmt"

	"github.com/webcodur/feelandnote-services-recommend/internal/repositories/socialdb"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository 提供 social.users 的只读访问。
type ProfileRepository struct {
	db      *pgxpool.Pool
	queries *socialdb.Queries
	log     *log.Helper
}

// NewProfileRepository 构造仓储实例。
func NewProfileRepository(db *pgxpool.Pool, logger log.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:      db,
		queries: socialdb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Exists 判断用户是否存在。
func (r *ProfileRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	exists, err := r.queries.UserExists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}
