package cli

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	infra "resume-builder/pkg/infrastructure"
)

const redisKeyPrefix = "resume-builder:"

// openStore builds the key-value store selected by cfg.StoreDriver. The
// returned close func releases any connection it opened.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repository.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("using in-memory store, edits will not survive a restart")
		return repository.NewMemoryStore(), noop, nil

	case config.DriverFile:
		s, err := repository.NewFileStore(cfg.StorePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using file store", "path", cfg.StorePath)
		return s, noop, nil

	case config.DriverPostgres:
		pool, err := infra.NewStorePool(ctx, cfg.StoreDatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := migration.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, errors.Wrap(err, "migrate store database")
		}
		log.Info("using postgres store")
		return repository.NewPGStore(pool), pool.Close, nil

	case config.DriverRedis:
		rdb, err := infra.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using redis store", "prefix", redisKeyPrefix)
		return repository.NewRedisStore(rdb, redisKeyPrefix), func() { _ = rdb.Close() }, nil
	}
	return nil, noop, errors.Errorf("unknown store driver %q", cfg.StoreDriver)
}
