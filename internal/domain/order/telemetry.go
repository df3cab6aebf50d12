package order

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/sustainafood/grocery-orders/internal/domain/order"

type metrics struct {
	created       metric.Int64Counter
	confirmed     metric.Int64Counter
	failed        metric.Int64Counter
	statusChanges metric.Int64Counter
}

func newMetrics(mp metric.MeterProvider) (*metrics, error) {
	meter := mp.Meter(instrumentationName)

	var (
		m   metrics
		err error
	)
	if m.created, err = meter.Int64Counter("orders.created",
		metric.WithDescription("Orders placed, by payment method"),
	); err != nil {
		return nil, errors.Wrap(err, "orders.created")
	}
	if m.confirmed, err = meter.Int64Counter("payments.confirmed",
		metric.WithDescription("Card payments verified as captured"),
	); err != nil {
		return nil, errors.Wrap(err, "payments.confirmed")
	}
	if m.failed, err = meter.Int64Counter("payments.failed",
		metric.WithDescription("Card payment attempts that failed"),
	); err != nil {
		return nil, errors.Wrap(err, "payments.failed")
	}
	if m.statusChanges, err = meter.Int64Counter("orders.status_changes",
		metric.WithDescription("Staff fulfillment transitions, by target status"),
	); err != nil {
		return nil, errors.Wrap(err, "orders.status_changes")
	}
	return &m, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
