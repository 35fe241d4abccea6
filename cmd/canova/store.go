package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/canova/internal/config"
	"github.com/aretw0/canova/pkg/adapters/memory"
	redisstore "github.com/aretw0/canova/pkg/adapters/redis"
	"github.com/aretw0/canova/pkg/adapters/sqlite"
	"github.com/aretw0/canova/pkg/persistence/middleware"
	"github.com/aretw0/canova/pkg/ports"
	"github.com/redis/go-redis/v9"
)

// backend is the store selected by configuration, with what it needs to shut down.
type backend struct {
	store  ports.Store
	locker ports.DistributedLocker
	close  func() error
}

func openStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*backend, error) {
	b := &backend{close: func() error { return nil }}

	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("Using the in-memory store, data is lost on exit")
		b.store = memory.NewStore()

	case config.DriverRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		b.store = redisstore.NewFromClient(client, redisstore.WithPrefix(cfg.RedisPrefix))
		b.locker = redisstore.NewLocker(client, cfg.RedisPrefix)
		b.close = client.Close
		logger.Info("Connected to redis", "addr", opts.Addr, "db", opts.DB, "prefix", cfg.RedisPrefix)

	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.store = s
		b.close = s.Close
		logger.Info("Opened sqlite store", "path", cfg.SQLitePath)

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	var mws []middleware.Middleware
	if cfg.EncryptionKey != "" {
		key, err := middleware.DecodeKey(cfg.EncryptionKey)
		if err != nil {
			b.close()
			return nil, err
		}
		enc, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			b.close()
			return nil, err
		}
		mws = append(mws, enc)
		logger.Info("Response answers are encrypted at rest")
	}
	if len(cfg.RedactQuestions) > 0 {
		pii, err := middleware.NewPIIMiddleware(cfg.RedactQuestions)
		if err != nil {
			b.close()
			return nil, err
		}
		mws = append(mws, pii)
		logger.Info("Redacting answers", "patterns", cfg.RedactQuestions)
	}
	b.store = middleware.Chain(b.store, mws...)
	return b, nil
}
