package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mangahub/config"
	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger routes gorm output through slog. Statements are logged with the request logger when
// one is on the context, so SQL lines carry the request id.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	maxSQLLength  int
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{logger: base, level: logger.Warn}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	l.slowThreshold = cfg.Database.SlowQueryThreshold
	l.maxSQLLength = cfg.Database.MaxLoggedSQLLength

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < min || l.logger == nil {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := l.from(ctx)

	switch {
	case err != nil && l.level >= logger.Error && !expectedQueryError(err):
		log.LogAttrs(ctx, slog.LevelError, "Database query failed",
			append(l.queryAttrs(sqlAndRows, elapsed), slog.Any("error", err))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		log.LogAttrs(ctx, slog.LevelWarn, "Slow database query",
			append(l.queryAttrs(sqlAndRows, elapsed), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelDebug, "Database query", l.queryAttrs(sqlAndRows, elapsed)...)
	}
}

func (l *queryLogger) from(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.LoggerOr(ctx, l.logger)
}

func (l *queryLogger) queryAttrs(sqlAndRows func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRows()
	if l.maxSQLLength > 0 && len(sql) > l.maxSQLLength {
		// Page batch inserts can expand to very long statements.
		sql = sql[:l.maxSQLLength] + "...(truncated)"
	}

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

// expectedQueryError filters errors the repositories translate into domain results:
// misses, unique and foreign key violations, and requests the client abandoned.
func expectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, context.Canceled)
}
