package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mangahub/config"
	deliverycontext "mangahub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func newTestQueryLogger(base *slog.Logger, debug bool) logger.Interface {
	cfg := &config.Config{Database: config.DatabaseConfig{SlowQueryThreshold: 100 * time.Millisecond, MaxLoggedSQLLength: 40}}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg)
}

func sqlOf(statement string) func() (string, int64) {
	return func() (string, int64) { return statement, 3 }
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("syntax error"), want: "Database query failed"},
		{name: "not found is expected", err: gorm.ErrRecordNotFound},
		{name: "duplicate key is expected", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert")},
		{name: "cancelled request is expected", err: context.Canceled},
		{name: "slow", elapsed: time.Second, want: "Slow database query"},
		{name: "fast is quiet outside debug"},
		{name: "fast in debug", debug: true, want: "Database query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newBufferLogger()

			newTestQueryLogger(base, tt.debug).Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlOf("SELECT 1"), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), `msg="`+tt.want+`"`)
			assert.Contains(t, buf.String(), "rows=3")
		})
	}
}

func TestQueryLogger_TruncatesLongStatements(t *testing.T) {
	base, buf := newBufferLogger()
	statement := "INSERT INTO pages VALUES " + strings.Repeat("(?, ?, ?),", 50)

	newTestQueryLogger(base, true).Trace(context.Background(), time.Now(), sqlOf(statement), nil)

	assert.Contains(t, buf.String(), "...(truncated)")
	assert.NotContains(t, buf.String(), statement)
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	base, _ := newBufferLogger()
	requestLogger, buf := newBufferLogger()

	c := echo.New().NewContext(httptest.NewRequest("GET", "/api/mangas", nil), httptest.NewRecorder())
	deliverycontext.SetRequestID(c, "req-42", requestLogger.With(slog.String("request_id", "req-42")))

	newTestQueryLogger(base, false).Trace(c.Request().Context(), time.Now(), sqlOf("SELECT 1"), errors.New("boom"))

	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestPoolMonitor_Report(t *testing.T) {
	base, buf := newBufferLogger()
	monitor := newPoolMonitor(base, nil, config.DatabaseConfig{PoolWaitWarn: 50 * time.Millisecond})

	monitor.report(context.Background(), sql.DBStats{WaitCount: 4}, sql.DBStats{WaitCount: 4})
	assert.Empty(t, buf.String())

	monitor.report(context.Background(),
		sql.DBStats{WaitCount: 4, WaitDuration: time.Second},
		sql.DBStats{WaitCount: 6, WaitDuration: time.Second + 200*time.Millisecond},
	)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avgWait=100ms")
}
