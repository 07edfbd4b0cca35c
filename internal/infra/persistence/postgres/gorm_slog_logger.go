package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"patrol/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// gormSlogLogger adapts GORM's logger to slog. Missing rows are an expected
// outcome of FindByID lookups and are never logged as failures.
type gormSlogLogger struct {
	logger    *slog.Logger
	level     logger.LogLevel
	slowQuery time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{level: logger.Warn, slowQuery: defaultSlowQuery}
	if base != nil {
		l.logger = base.With(slog.String("component", "gorm"))
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Env.Log.SlowQuery > 0 {
		l.slowQuery = cfg.Env.Log.SlowQuery
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}
	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	level, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the level and message for a finished statement. ok is false when it should not be logged.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		return slog.LevelError, "Query failed", true
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= logger.Warn:
		return slog.LevelWarn, "Slow query", true
	case l.level >= logger.Info:
		return slog.LevelInfo, "Query", true
	default:
		return slog.LevelInfo, "", false
	}
}
