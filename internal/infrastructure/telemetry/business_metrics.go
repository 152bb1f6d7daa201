package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when an instrument set is built without a meter
var ErrMeterNil = errors.New("telemetry: meter is nil")

// Login outcomes
const (
	LoginSucceeded = "success"
	LoginFailed    = "failure"
)

// Document number sources
const (
	NumberGenerated = "generated"
	NumberManual    = "manual"
)

// BusinessMetrics counts domain events the dashboards track. A nil
// *BusinessMetrics is valid and records nothing.
type BusinessMetrics struct {
	logins           *Counter
	documentsCreated *Counter
	numberRetries    *Counter
	usersDeleted     *Counter
}

// NewBusinessMetrics registers the ERP instruments on meter
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	var (
		bm  BusinessMetrics
		err error
	)
	if bm.logins, err = NewCounter(meter, "erp_login_total", "Login attempts by outcome", "{attempt}"); err != nil {
		return nil, err
	}
	if bm.documentsCreated, err = NewCounter(meter, "erp_document_created_total", "Invoices and payments created, by number source", "{document}"); err != nil {
		return nil, err
	}
	if bm.numberRetries, err = NewCounter(meter, "erp_document_number_retry_total", "Generated numbers discarded after a unique collision", "{retry}"); err != nil {
		return nil, err
	}
	if bm.usersDeleted, err = NewCounter(meter, "erp_user_deleted_total", "User accounts deleted", "{user}"); err != nil {
		return nil, err
	}
	return &bm, nil
}

// RecordLogin counts a login attempt with result LoginSucceeded or LoginFailed
func (bm *BusinessMetrics) RecordLogin(ctx context.Context, result string) {
	if bm == nil {
		return
	}
	bm.logins.Inc(ctx, AttrResult.String(result))
}

// RecordDocumentCreated counts a stored invoice or payment
func (bm *BusinessMetrics) RecordDocumentCreated(ctx context.Context, space, source string) {
	if bm == nil {
		return
	}
	bm.documentsCreated.Inc(ctx, AttrSpace.String(space), AttrSource.String(source))
}

// RecordNumberRetry counts a generated number that collided on insert
func (bm *BusinessMetrics) RecordNumberRetry(ctx context.Context, space string) {
	if bm == nil {
		return
	}
	bm.numberRetries.Inc(ctx, AttrSpace.String(space))
}

// RecordUserDeleted counts a removed account
func (bm *BusinessMetrics) RecordUserDeleted(ctx context.Context) {
	if bm == nil {
		return
	}
	bm.usersDeleted.Inc(ctx)
}
