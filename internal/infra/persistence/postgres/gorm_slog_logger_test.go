package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"ethos/config"
	"ethos/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	t.Parallel()

	buf, l := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	buf, l = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_Errors(t *testing.T) {
	t.Parallel()

	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	t.Parallel()

	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	t.Parallel()

	buf, l := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.LogMode(logger.Silent).Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
