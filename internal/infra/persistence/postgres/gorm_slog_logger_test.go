package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	deliverycontext "cashless/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(level logger.LogLevel) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &gormSlogLogger{logger: base, level: level, slowThreshold: defaultGormSlowThreshold}, buf
}

func TestGormSlogLogger_Classify(t *testing.T) {
	l, _ := newCapturingGormLogger(logger.Warn)

	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		level   slog.Level
		logged  bool
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound, logged: false},
		{name: "serialization failure warns", err: &pgconn.PgError{Code: pgSerializationFailure}, level: slog.LevelWarn, logged: true},
		{name: "unique violation below warn", err: &pgconn.PgError{Code: pgUniqueViolation}, level: slog.LevelInfo, logged: false},
		{name: "other failure is an error", err: errors.New("connection reset"), level: slog.LevelError, logged: true},
		{name: "slow query warns", elapsed: time.Second, level: slog.LevelWarn, logged: true},
		{name: "fast query below warn", elapsed: time.Millisecond, level: slog.LevelInfo, logged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, _, ok := l.classify(tt.err, tt.elapsed)
			assert.Equal(t, tt.logged, ok)
			if ok {
				assert.Equal(t, tt.level, level)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, baseBuf := newCapturingGormLogger(logger.Info)

	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-42")
	assert.Contains(t, reqBuf.String(), "SELECT 1")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newCapturingGormLogger(logger.Info)
	silent := l.LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	silent.Error(context.Background(), "failed %s", "query")

	assert.Empty(t, buf.String())
}
