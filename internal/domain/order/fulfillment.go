package order

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/internal/domain/auth"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

// UpdateStatus applies a staff-initiated fulfillment transition. Illegal
// transitions fail with *ConflictError and leave the order unchanged.
//
// Rejecting an order that still holds reserved stock gives that stock back.
// A card payment still in flight is cancelled first; if the gateway already
// captured it the rejection is refused until the payment is confirmed.
// Collecting an in-person order settles its deferred payment.
func (s *Service) UpdateStatus(ctx context.Context, caller auth.Caller, id string, next Status) (_ *Order, err error) {
	ctx, span := s.startSpan(ctx, "order.UpdateStatus",
		attribute.String("order.id", id),
		attribute.String("order.status", string(next)),
	)
	defer func() { endSpan(span, err) }()

	if !caller.IsStaff() {
		return nil, &ForbiddenError{Reason: "staff role required"}
	}

	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeStaff(caller, o); err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.Status),
			Attempted: string(next),
		}
	}
	if next == StatusConfirmed && o.PaymentMethod == PaymentCard && o.PaymentStatus != PaymentCompleted {
		return nil, &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.Status),
			Attempted: string(next),
			Reason:    "card payment has not been captured",
		}
	}

	if next == StatusRejected && o.PaymentMethod == PaymentCard &&
		o.PaymentStatus == PaymentPending && o.PaymentIntentID != "" {
		if err := s.gateway.Cancel(ctx, o.PaymentIntentID); err != nil {
			if errors.Is(err, payment.ErrIntentCaptured) {
				return nil, &ConflictError{
					OrderID:   o.ID,
					Current:   string(o.Status),
					Attempted: string(next),
					Reason:    "card payment was captured, confirm it before rejecting",
				}
			}
			return nil, asGatewayError("cancel intent", err)
		}
	}

	prev := o.Status
	releaseStock := false
	o.Status = next
	switch next {
	case StatusRejected:
		releaseStock = o.StockReserved
		o.StockReserved = false
	case StatusCollected:
		o.StockReserved = false
		if o.PaymentMethod == PaymentInPerson {
			o.PaymentStatus = PaymentCompleted
		}
	}

	if err := s.save(ctx, o, string(next)); err != nil {
		return nil, err
	}
	if releaseStock {
		s.release(ctx, o.Items)
	}

	zctx.From(ctx).Info("Order status changed",
		zap.String("order_id", o.ID),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
		zap.String("staff_id", caller.UserID),
	)
	s.metrics.statusChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("order.status", string(next)),
	))
	return o, nil
}
