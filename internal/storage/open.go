package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm/logger"

	"daily-planner-api/internal/database"
)

// Drivers understood by Open.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Driver      string
	DBPath      string
	RedisAddr   string
	RedisPrefix string
	// CacheTTL > 0 puts a CachedStore in front of sqlite and redis backends.
	CacheTTL time.Duration
	LogLevel logger.LogLevel
	Logger   *slog.Logger
}

// Open builds the configured Store. The returned close function releases backend resources.
func Open(ctx context.Context, opts Options) (Store, func() error, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var (
		store   Store
		closeFn = func() error { return nil }
	)

	switch opts.Driver {
	case "", DriverSQLite:
		db, err := database.Open(opts.DBPath, opts.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		sqlStore := NewSQLStore(db)
		store, closeFn = sqlStore, sqlStore.Close
		log.Info("storage opened", "driver", DriverSQLite, "path", opts.DBPath)
	case DriverRedis:
		redisStore, err := DialRedis(ctx, opts.RedisAddr, opts.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = redisStore, redisStore.Close
		log.Info("storage opened", "driver", DriverRedis, "addr", opts.RedisAddr, "prefix", opts.RedisPrefix)
	case DriverMemory:
		log.Warn("storage is in-memory; state is lost on exit")
		return NewMemoryStore(), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}

	if opts.CacheTTL > 0 {
		cached := NewCachedStore(store, opts.CacheTTL)
		sweepCtx, stopSweep := context.WithCancel(context.Background())
		go cached.RunSweeper(sweepCtx, opts.CacheTTL, log)

		closeBackend := closeFn
		store, closeFn = cached, func() error {
			stopSweep()
			return closeBackend()
		}
	}
	return store, closeFn, nil
}
