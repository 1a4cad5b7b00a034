package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/webcodur/feelandnote-services-recommend/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

const poolConnectTimeout = 10 * time.Second

// NewPgxPool 建立 PostgreSQL 连接池并验证连通性，返回的清理函数负责关闭连接池。
func NewPgxPool(c *conf.Data, logger log.Logger) (*pgxpool.Pool, func(), error) {
	helper := log.NewHelper(logger)
	if c == nil || c.Database == nil || c.Database.DSN == "" {
		return nil, nil, fmt.Errorf("database dsn is not configured")
	}

	cfg, err := pgxpool.ParseConfig(c.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database dsn: %w", err)
	}
	if c.Database.MaxConns > 0 {
		cfg.MaxConns = c.Database.MaxConns
	}

	ctx, cancel := context.WithTimeout(context.Background(), poolConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	cleanup := func() {
		helper.Info("closing database pool")
		pool.Close()
	}
	return pool, cleanup, nil
}
