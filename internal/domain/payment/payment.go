// Package payment defines the boundary to the external card-payment provider.
//
// A payment intent is one attempt to charge a shopper for an order. The client
// confirms it directly against the provider using the client secret; the server
// only ever checks the outcome by intent id.
package payment

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrIntentCaptured is returned by Gateway.Cancel when the provider already
// charged the intent.
var ErrIntentCaptured = errors.New("payment intent already captured")

// Status is the settled state of an intent as reported by the provider.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusPending   Status = "pending"
)

// CreateIntentRequest scopes a new intent to one order attempt.
type CreateIntentRequest struct {
	OrderID string
	Amount  decimal.Decimal
	// IdempotencyKey makes repeated creation for the same attempt safe.
	IdempotencyKey string
}

// Intent is the result of creating a payment intent. ClientSecret must not
// be logged or persisted.
type Intent struct {
	ID           string
	ClientSecret string
}

// Capture is the server-side view of an intent.
type Capture struct {
	IntentID string
	Status   Status
	// OrderID is the order the intent was created for.
	OrderID string
	// AmountMinor is the amount in the currency's minor unit.
	AmountMinor int64
	// Reason is the provider's explanation for a failure, if any.
	Reason string
}

// Gateway wraps the provider's payment intent primitive.
type Gateway interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error)
	CaptureStatus(ctx context.Context, intentID string) (*Capture, error)
	// Cancel makes an intent unchargeable. Cancelling an intent that is
	// already canceled succeeds; one that was captured fails with
	// ErrIntentCaptured.
	Cancel(ctx context.Context, intentID string) error
}

// GatewayError reports a failed call to the payment provider.
type GatewayError struct {
	Op     string
	Reason string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("payment gateway %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// MinorUnits converts a decimal amount into minor currency units (cents).
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
