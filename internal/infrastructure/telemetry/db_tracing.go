package telemetry

import (
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds database span settings
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // include bound variables in spans
	SlowQueryThresh time.Duration // queries slower than this get a slow_query event
	DBSystem        string
}

const startedAtKey = "telemetry:started_at"

// RegisterDBTracing installs otelgorm so every query becomes a child span
// of the request, and flags slow statements on their span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBSystem)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if cfg.SlowQueryThresh > 0 {
		if err := registerSlowQuery(db, cfg.SlowQueryThresh, logger); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return nil
}

func registerSlowQuery(db *gorm.DB, threshold time.Duration, logger *zap.Logger) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(startedAtKey, time.Now())
	}
	after := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		elapsed := time.Since(v.(time.Time))
		if elapsed < threshold {
			return
		}
		if tx.Statement.Context != nil {
			trace.SpanFromContext(tx.Statement.Context).AddEvent("slow_query")
		}
		logger.Warn("Slow query",
			zap.String("table", tx.Statement.Table),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", threshold),
		)
	}

	cb := db.Callback()
	steps := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register("telemetry:slow_before_create", before) },
		func() error { return cb.Create().After("gorm:create").Register("telemetry:slow_after_create", after) },
		func() error { return cb.Query().Before("gorm:query").Register("telemetry:slow_before_query", before) },
		func() error { return cb.Query().After("gorm:query").Register("telemetry:slow_after_query", after) },
		func() error { return cb.Update().Before("gorm:update").Register("telemetry:slow_before_update", before) },
		func() error { return cb.Update().After("gorm:update").Register("telemetry:slow_after_update", after) },
		func() error { return cb.Delete().Before("gorm:delete").Register("telemetry:slow_before_delete", before) },
		func() error { return cb.Delete().After("gorm:delete").Register("telemetry:slow_after_delete", after) },
		func() error { return cb.Row().Before("gorm:row").Register("telemetry:slow_before_row", before) },
		func() error { return cb.Row().After("gorm:row").Register("telemetry:slow_after_row", after) },
		func() error { return cb.Raw().Before("gorm:raw").Register("telemetry:slow_before_raw", before) },
		func() error { return cb.Raw().After("gorm:raw").Register("telemetry:slow_after_raw", after) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
