package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"patrol/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestClassifyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want violation
	}{
		{name: "nil", err: nil, want: violationNone},
		{name: "gorm duplicate", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: violationUnique},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: violationForeignKey},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, want: violationCheck},
		{name: "pg unique", err: &pgconn.PgError{Code: sqlStateUniqueViolation}, want: violationUnique},
		{name: "pg foreign key wrapped", err: errors.Wrap(&pgconn.PgError{Code: sqlStateForeignKeyViolation}, "insert"), want: violationForeignKey},
		{name: "pg check", err: &pgconn.PgError{Code: sqlStateCheckViolation}, want: violationCheck},
		{name: "pg other", err: &pgconn.PgError{Code: "40001"}, want: violationNone},
		{name: "plain", err: errors.New("connection reset"), want: violationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyViolation(tt.err))
		})
	}
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	_, _, ok := poolWaitReport(prev, prev)
	assert.False(t, ok)

	level, attrs, ok := poolWaitReport(prev, sql.DBStats{WaitCount: 6, WaitDuration: 20 * time.Millisecond})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avgWait", 5*time.Millisecond))

	level, _, ok = poolWaitReport(prev, sql.DBStats{WaitCount: 5, WaitDuration: 90 * time.Millisecond})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 50 * time.Millisecond
	l := newGormSlogLogger(base, cfg)
	sqlAndRows := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sqlAndRows, nil)
	assert.Empty(t, buf.String(), "fast queries are silent at warn level")

	l.Trace(ctx, time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "missing rows are not failures")

	l.Trace(ctx, time.Now().Add(-time.Second), sqlAndRows, nil)
	assert.Contains(t, buf.String(), "Slow query")
	buf.Reset()

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))
	assert.Contains(t, buf.String(), "Query failed")
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	buf.Reset()

	l.LogMode(logger.Info).Trace(ctx, time.Now(), sqlAndRows, nil)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
	buf.Reset()

	l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, buf.String())
}
