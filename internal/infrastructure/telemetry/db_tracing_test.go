package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type traceProbe struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&traceProbe{}))
	return db
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	rec := installRecorder(t)
	db := openDB(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{}, zap.NewNop()))

	var got []traceProbe
	require.NoError(t, db.Find(&got).Error)
	assert.Empty(t, rec.Ended())
}

func TestRegisterDBTracing_EmitsSpans(t *testing.T) {
	rec := installRecorder(t)
	db := openDB(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBSystem: "sqlite"}, zap.NewNop()))

	ctx, span := StartServiceSpan(context.Background(), "test", "query")
	require.NoError(t, db.WithContext(ctx).Create(&traceProbe{Name: "a"}).Error)
	var got []traceProbe
	require.NoError(t, db.WithContext(ctx).Find(&got).Error)
	span.End()

	var dbSpans int
	for _, s := range rec.Ended() {
		if s.Parent().SpanID() == span.SpanContext().SpanID() {
			dbSpans++
		}
	}
	assert.GreaterOrEqual(t, dbSpans, 2)
}

func TestRegisterDBTracing_SlowQuery(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	db := openDB(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{
		Enabled:         true,
		DBSystem:        "sqlite",
		SlowQueryThresh: time.Nanosecond,
	}, zap.New(core)))

	var got []traceProbe
	require.NoError(t, db.Find(&got).Error)

	require.GreaterOrEqual(t, logs.FilterMessage("Slow query").Len(), 1)
	assert.Equal(t, "trace_probes", logs.FilterMessage("Slow query").All()[0].ContextMap()["table"])
}
