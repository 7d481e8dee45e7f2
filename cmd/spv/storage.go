package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/repository/cached"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/repository/sqlite"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/syncer"
)

// openRepository opens the configured store behind the read cache and returns
// a func that closes the store.
func openRepository(cfg config, logger *zap.Logger) (syncer.Repository, func() error, error) {
	var (
		store interface {
			syncer.Repository
			Close() error
		}
		err error
	)
	switch cfg.Storage {
	case "sqlite":
		store, err = sqlite.NewRepository(cfg.SQLitePath, metrics.NewRepository("sqlite", cfg.Network))
	case "clickhouse":
		if cfg.ClickhouseDSN == "" {
			return nil, nil, errors.New("clickhouse dsn is required for clickhouse storage")
		}
		store, err = clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewRepository("clickhouse", cfg.Network))
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s repository: %w", cfg.Storage, err)
	}

	repo, err := cached.NewRepository(store, cfg.CacheSize, metrics.NewCache(cfg.Network))
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("init repository cache: %w", err)
	}
	logger.Info("repository opened", zap.String("storage", cfg.Storage), zap.Int("cache_size", cfg.CacheSize))
	return repo, store.Close, nil
}
