package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"mangahub/config"
	"mangahub/internal/domain/lifecycle"
	"mangahub/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and any replicas) and ties the pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}

	db = configure(db, params.Logger, params.Config)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB, params.Config.Database)
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// configure applies the session settings every repository relies on. Tests call it on sqlite.
func configure(db *gorm.DB, logger *slog.Logger, cfg *config.Config) *gorm.DB {
	// Repositories match gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated instead of driver codes.
	db.TranslateError = true

	return db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
}

// poolMonitor reports connection pool contention: requests waiting for a free connection.
type poolMonitor struct {
	logger   *slog.Logger
	db       *sql.DB
	interval time.Duration
	warnWait time.Duration
}

func newPoolMonitor(logger *slog.Logger, db *sql.DB, cfg config.DatabaseConfig) *poolMonitor {
	return &poolMonitor{
		logger:   logger,
		db:       db,
		interval: cfg.PoolMonitorInterval,
		warnWait: cfg.PoolWaitWarn,
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the waits that happened between two samples.
func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= m.warnWait {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
