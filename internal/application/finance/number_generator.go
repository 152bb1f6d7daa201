package finance

import (
	"context"
	"errors"
	"time"

	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/numbering"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// NumberHistory finds the greatest document number already stored under a prefix
type NumberHistory interface {
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// NumberingOptions configures a NumberGenerator
type NumberingOptions struct {
	// MaxRetries is how many times a generated number is re-drawn after it
	// collided on insert
	MaxRetries int
	// Location is the timezone periods are computed in; nil means time.Local
	Location *time.Location
	// Now overrides the clock, for tests
	Now func() time.Time
}

// NumberGenerator hands out "YYYYMM-NN" numbers for one document space.
// The counter lives in the sequence repository; numbers already stored, for
// example imported or typed in by hand, are folded into it before use.
type NumberGenerator struct {
	space      numbering.Space
	sequences  numbering.SequenceRepository
	history    NumberHistory
	maxRetries int
	location   *time.Location
	now        func() time.Time
	metrics    *telemetry.BusinessMetrics
	logger     *zap.Logger
}

// NewNumberGenerator creates a generator for space
func NewNumberGenerator(
	space numbering.Space,
	sequences numbering.SequenceRepository,
	history NumberHistory,
	opts NumberingOptions,
	metrics *telemetry.BusinessMetrics,
	logger *zap.Logger,
) *NumberGenerator {
	g := &NumberGenerator{
		space:      space,
		sequences:  sequences,
		history:    history,
		maxRetries: opts.MaxRetries,
		location:   opts.Location,
		now:        opts.Now,
		metrics:    metrics,
		logger:     logger,
	}
	if g.maxRetries < 0 {
		g.maxRetries = 0
	}
	if g.location == nil {
		g.location = time.Local
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

func (g *NumberGenerator) period() string {
	return numbering.Period(g.now().In(g.location))
}

// sync raises the counter past the greatest number stored for period
func (g *NumberGenerator) sync(ctx context.Context, period string) error {
	last, err := g.history.LastNumberWithPrefix(ctx, numbering.Prefix(period))
	if err != nil {
		return err
	}
	if _, seq, ok := numbering.Parse(last); ok {
		return g.sequences.Observe(ctx, g.space, period, seq)
	}
	return nil
}

// Preview returns the number the next allocation in the current month would
// produce. It consumes nothing, so two previews may show the same number.
func (g *NumberGenerator) Preview(ctx context.Context) (string, error) {
	period := g.period()
	if err := g.sync(ctx, period); err != nil {
		return "", err
	}
	seq, err := g.sequences.Peek(ctx, g.space, period)
	if err != nil {
		return "", err
	}
	return numbering.Format(period, seq), nil
}

// Allocate consumes and returns the next number of the current month.
// Concurrent callers always get distinct numbers.
func (g *NumberGenerator) Allocate(ctx context.Context) (string, error) {
	period := g.period()
	if err := g.sync(ctx, period); err != nil {
		return "", err
	}
	seq, err := g.sequences.Next(ctx, g.space, period)
	if err != nil {
		return "", err
	}
	return numbering.Format(period, seq), nil
}

// Observe records a number chosen outside the generator so it is never
// handed out. Numbers that do not follow the "YYYYMM-NN" shape are ignored.
func (g *NumberGenerator) Observe(ctx context.Context, number string) {
	period, seq, ok := numbering.Parse(number)
	if !ok {
		return
	}
	if err := g.sequences.Observe(ctx, g.space, period, seq); err != nil {
		g.logger.Warn("Failed to record document number",
			zap.String("space", string(g.space)),
			zap.String("number", number),
			zap.Error(err))
	}
}

// Assign stores a document through insert. A manual number is used as given
// and a collision is returned to the caller. Without one, a number is
// allocated and re-drawn up to MaxRetries times while insert reports a
// duplicate. It returns the number stored.
func (g *NumberGenerator) Assign(ctx context.Context, manual string, insert func(number string) error) (string, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "numbering", "assign", telemetry.SpanAttrDocumentSpace, string(g.space))
	defer span.End()

	if manual != "" {
		if err := insert(manual); err != nil {
			return "", err
		}
		g.Observe(ctx, manual)
		g.metrics.RecordDocumentCreated(ctx, string(g.space), telemetry.NumberManual)
		return manual, nil
	}

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		number, err := g.Allocate(ctx)
		if err != nil {
			telemetry.RecordError(span, err)
			return "", err
		}
		err = insert(number)
		if err == nil {
			telemetry.SetAttributes(span, telemetry.SpanAttrDocumentNumber, number, telemetry.SpanAttrAttempt, attempt)
			g.metrics.RecordDocumentCreated(ctx, string(g.space), telemetry.NumberGenerated)
			g.logger.Debug("Document number allocated",
				zap.String("space", string(g.space)),
				zap.String("number", number),
				zap.Int("attempt", attempt))
			return number, nil
		}
		if !isDuplicateNumber(err) {
			return "", err
		}
		lastErr = err
		g.metrics.RecordNumberRetry(ctx, string(g.space))
		g.logger.Warn("Generated document number already taken",
			zap.String("space", string(g.space)),
			zap.String("number", number),
			zap.Int("attempt", attempt))
	}
	telemetry.RecordError(span, lastErr)
	return "", lastErr
}

func isDuplicateNumber(err error) bool {
	return errors.Is(err, finance.ErrDuplicateInvoiceNumber) || errors.Is(err, finance.ErrDuplicatePaymentNumber)
}
