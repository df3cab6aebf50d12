package order

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/internal/domain/auth"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

// ConfirmRequest carries the outcome the client observed after confirming an
// intent directly against the gateway.
type ConfirmRequest struct {
	OrderID  string
	IntentID string
	// ClientResult is what the client claims happened. It is logged but never
	// acted on: only the gateway's view changes the order.
	ClientResult payment.Status
	ClientError  string
}

// ConfirmPayment reconciles a card order against the gateway's view of the
// intent. A verified capture confirms the order; a verified failure or any
// mismatch cancels the intent, marks the payment failed and gives the reserved
// stock back. Repeating the call for a settled intent returns the order
// unchanged unless the gateway captured a previously failed intent.
func (s *Service) ConfirmPayment(ctx context.Context, caller auth.Caller, req ConfirmRequest) (_ *Order, err error) {
	ctx, span := s.startSpan(ctx, "order.ConfirmPayment", attribute.String("order.id", req.OrderID))
	defer func() { endSpan(span, err) }()

	if req.IntentID == "" {
		return nil, &ValidationError{Fields: []string{"intentId"}}
	}

	o, err := s.load(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeView(caller, o); err != nil {
		return nil, err
	}
	if o.PaymentMethod != PaymentCard {
		return nil, &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.PaymentStatus),
			Attempted: string(PaymentCompleted),
			Reason:    "order is not paid by card",
		}
	}

	switch o.PaymentStatus {
	case PaymentCompleted:
		if o.PaymentID == req.IntentID {
			return o, nil
		}
		return nil, &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.PaymentStatus),
			Attempted: string(PaymentCompleted),
			Reason:    "order already paid with another intent",
		}
	case PaymentFailed:
		if o.PaymentIntentID == req.IntentID && o.Status == StatusPending {
			return s.recheckFailed(ctx, o)
		}
		return nil, &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.PaymentStatus),
			Attempted: string(PaymentCompleted),
			Reason:    "payment attempt failed, retry to obtain a new intent",
		}
	}
	if o.Status != StatusPending {
		return nil, &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.Status),
			Attempted: string(StatusConfirmed),
			Reason:    "order no longer awaits payment",
		}
	}

	capture, err := s.gateway.CaptureStatus(ctx, req.IntentID)
	if err != nil {
		return nil, asGatewayError("capture status", err)
	}

	if reason := mismatch(o, req.IntentID, capture); reason != "" {
		return s.failPayment(ctx, o, reason)
	}

	switch capture.Status {
	case payment.StatusSucceeded:
		return s.completePayment(ctx, o, capture)
	case payment.StatusFailed:
		reason := capture.Reason
		if reason == "" {
			reason = "payment declined"
		}
		return s.failPayment(ctx, o, reason)
	default:
		if req.ClientResult == payment.StatusFailed {
			zctx.From(ctx).Info("Client reported failure for unsettled intent",
				zap.String("order_id", o.ID),
				zap.String("client_error", req.ClientError),
			)
		}
		return nil, ErrPaymentPending
	}
}

// recheckFailed asks the gateway again about the intent of a failed attempt.
// Cancellation can lose a race against a capture, so a failed attempt whose
// intent was charged after all is recovered instead of being left failed.
func (s *Service) recheckFailed(ctx context.Context, o *Order) (*Order, error) {
	capture, err := s.gateway.CaptureStatus(ctx, o.PaymentIntentID)
	if err != nil {
		return nil, asGatewayError("capture status", err)
	}
	if capture.Status != payment.StatusSucceeded || mismatch(o, o.PaymentIntentID, capture) != "" {
		return o, nil
	}

	lg := zctx.From(ctx)
	if err := s.reserve(ctx, o.Items); err != nil {
		var stockErr *InsufficientStockError
		if !errors.As(err, &stockErr) {
			return nil, err
		}
		// Charged, but the goods are gone: keep the payment on record and
		// reject so staff can refund.
		o.PaymentStatus = PaymentCompleted
		o.PaymentID = capture.IntentID
		o.FailureReason = "payment captured after the attempt failed; stock is no longer available, refund required"
		o.Status = StatusRejected
		if err := s.save(ctx, o, string(StatusRejected)); err != nil {
			return nil, err
		}
		lg.Error("Captured payment needs refund",
			zap.String("order_id", o.ID),
			zap.String("payment_id", o.PaymentID),
		)
		return o, nil
	}

	o.StockReserved = true
	completed, err := s.completePayment(ctx, o, capture)
	if err != nil {
		s.release(ctx, o.Items)
		return nil, err
	}
	lg.Warn("Recovered payment captured after failure", zap.String("order_id", o.ID))
	return completed, nil
}

// mismatch reports why capture does not belong to o, or "" if it does.
func mismatch(o *Order, intentID string, capture *payment.Capture) string {
	switch {
	case intentID != o.PaymentIntentID:
		return "intent does not belong to the current payment attempt"
	case capture.IntentID != intentID:
		return "gateway returned a different intent"
	case capture.OrderID != o.ID:
		return "intent was issued for another order"
	case capture.AmountMinor != payment.MinorUnits(o.TotalAmount):
		return fmt.Sprintf("captured amount %d does not match order total %d",
			capture.AmountMinor, payment.MinorUnits(o.TotalAmount))
	}
	return ""
}

func (s *Service) completePayment(ctx context.Context, o *Order, capture *payment.Capture) (*Order, error) {
	o.PaymentStatus = PaymentCompleted
	o.PaymentID = capture.IntentID
	o.FailureReason = ""
	o.Status = StatusConfirmed
	if err := s.save(ctx, o, string(StatusConfirmed)); err != nil {
		return nil, err
	}

	zctx.From(ctx).Info("Payment captured",
		zap.String("order_id", o.ID),
		zap.String("payment_id", o.PaymentID),
	)
	s.metrics.confirmed.Add(ctx, 1)
	return o, nil
}

// failPayment records a definitive failure of the current attempt. The intent
// is cancelled first so it cannot be charged later; the order stays pending
// so the shopper can retry. Reserved stock goes back only after the new state
// is stored, which keeps the release at most once.
func (s *Service) failPayment(ctx context.Context, o *Order, reason string) (*Order, error) {
	if err := s.cancelIntent(ctx, o); err != nil {
		return nil, err
	}

	held := o.StockReserved
	o.PaymentStatus = PaymentFailed
	o.FailureReason = reason
	o.StockReserved = false
	if err := s.save(ctx, o, string(PaymentFailed)); err != nil {
		return nil, err
	}
	if held {
		s.release(ctx, o.Items)
	}

	zctx.From(ctx).Warn("Payment failed",
		zap.String("order_id", o.ID),
		zap.String("reason", reason),
		zap.Bool("stock_released", held),
	)
	s.metrics.failed.Add(ctx, 1)
	return o, nil
}

// cancelIntent cancels the order's current intent, if any. An intent that was
// captured in the meantime is left to the next confirmation to reconcile.
func (s *Service) cancelIntent(ctx context.Context, o *Order) error {
	if o.PaymentIntentID == "" {
		return nil
	}
	err := s.gateway.Cancel(ctx, o.PaymentIntentID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, payment.ErrIntentCaptured):
		zctx.From(ctx).Warn("Intent captured before it could be cancelled",
			zap.String("order_id", o.ID),
			zap.String("intent_id", o.PaymentIntentID),
		)
		return nil
	default:
		return asGatewayError("cancel intent", err)
	}
}

// RetryPayment starts a fresh payment attempt for a card order whose previous
// attempt failed. Stock is reserved again before the new intent is issued.
func (s *Service) RetryPayment(ctx context.Context, caller auth.Caller, id string) (_ *CreateResult, err error) {
	ctx, span := s.startSpan(ctx, "order.RetryPayment", attribute.String("order.id", id))
	defer func() { endSpan(span, err) }()

	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeView(caller, o); err != nil {
		return nil, err
	}
	if o.PaymentMethod != PaymentCard || o.Status != StatusPending || o.PaymentStatus != PaymentFailed {
		return nil, &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.PaymentStatus),
			Attempted: string(PaymentPending),
			Reason:    "only failed card payments of pending orders can be retried",
		}
	}

	if err := s.reserve(ctx, o.Items); err != nil {
		return nil, err
	}
	o.StockReserved = true
	o.PaymentStatus = PaymentPending
	o.PaymentIntentID = ""
	o.FailureReason = ""
	if err := s.save(ctx, o, string(PaymentPending)); err != nil {
		s.release(ctx, o.Items)
		return nil, err
	}

	intent, err := s.startPayment(ctx, o)
	if err != nil {
		return nil, err
	}
	return &CreateResult{Order: o, Intent: intent}, nil
}

// startPayment issues a new intent for o, which must already be stored with
// its stock reserved. When the gateway refuses, the attempt is failed and the
// reservation released so the order can be retried later.
func (s *Service) startPayment(ctx context.Context, o *Order) (*payment.Intent, error) {
	o.PaymentAttempts++
	intent, err := s.gateway.CreateIntent(ctx, payment.CreateIntentRequest{
		OrderID:        o.ID,
		Amount:         o.TotalAmount,
		IdempotencyKey: fmt.Sprintf("order:%s:attempt:%d", o.ID, o.PaymentAttempts),
	})
	if err != nil {
		gwErr := asGatewayError("create intent", err)
		if _, failErr := s.failPayment(ctx, o, gwErr.Error()); failErr != nil {
			return nil, &PaymentSetupError{
				OrderID: o.ID,
				Err:     errors.Wrapf(gwErr, "record failure: %v", failErr),
			}
		}
		return nil, &PaymentSetupError{OrderID: o.ID, Err: gwErr}
	}

	o.PaymentIntentID = intent.ID
	if err := s.save(ctx, o, "payment intent"); err != nil {
		return nil, err
	}
	return intent, nil
}

func asGatewayError(op string, err error) error {
	var gwErr *payment.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	return &payment.GatewayError{Op: op, Err: err}
}
