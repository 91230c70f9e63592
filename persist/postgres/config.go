package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
)

// Config holds connection settings for the store
type Config struct {
	DSN      string `envconfig:"DSN" required:"true"`
	MaxConns int32  `envconfig:"MAX_CONNS" default:"4"`
}

// FromEnv loads Config from ACCESS_POSTGRES_* environment variables
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("access_postgres", &cfg); err != nil {
		return Config{}, fmt.Errorf("load postgres config: %w", err)
	}
	return cfg, nil
}

// Open connects a pool for the config and wraps it in a Store.
// The caller owns the pool lifecycle through Store.Close.
func Open(ctx context.Context, cfg Config, opts ...StoreOption) (*Store, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pc.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return New(pool, opts...), nil
}

// Close releases the underlying connection pool
func (s *Store) Close() {
	s.pool.Close()
}
