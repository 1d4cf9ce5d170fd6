package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"resume-builder/internal/infrastructure/migration"
	infra "resume-builder/pkg/infrastructure"
)

func connectTestPool(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	pool, err := infra.NewStorePool(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := migration.RunMigrations(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func connectTestRedis(t *testing.T, addr string) *redis.Client {
	t.Helper()
	rdb, err := infra.NewRedisClient(context.Background(), addr)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}
