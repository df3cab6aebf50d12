// Package sandbox implements payment.Gateway in memory.
//
// It is used for local development when no provider key is configured and
// as a deterministic gateway in tests. Intents start pending and move only
// when Settle is called, unless an automatic outcome is configured.
package sandbox

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/go-faster/errors"

	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

var (
	// ErrUnknownIntent is returned for intent ids the sandbox never issued.
	ErrUnknownIntent = errors.New("unknown payment intent")
	// ErrIntentCanceled is returned when settling a canceled intent.
	ErrIntentCanceled = errors.New("payment intent canceled")
)

type intent struct {
	capture  payment.Capture
	secret   string
	canceled bool
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithAutoSettle makes every new intent report status on its first lookup.
func WithAutoSettle(status payment.Status) Option {
	return func(g *Gateway) { g.auto = status }
}

// Gateway is an in-memory payment provider.
type Gateway struct {
	mu      sync.Mutex
	intents map[string]*intent
	byKey   map[string]string
	auto    payment.Status
}

var _ payment.Gateway = (*Gateway)(nil)

// New creates an empty sandbox gateway.
func New(opts ...Option) *Gateway {
	g := &Gateway{
		intents: make(map[string]*intent),
		byKey:   make(map[string]string),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// CreateIntent issues a pending intent. A repeated idempotency key returns
// the intent created first.
func (g *Gateway) CreateIntent(ctx context.Context, req payment.CreateIntentRequest) (*payment.Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.OrderID == "" || !req.Amount.IsPositive() {
		return nil, &payment.GatewayError{Op: "create intent", Reason: "order id and positive amount required"}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.byKey[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		in := g.intents[id]
		return &payment.Intent{ID: id, ClientSecret: in.secret}, nil
	}

	id := "pi_sandbox_" + randomHex(12)
	in := &intent{
		capture: payment.Capture{
			IntentID:    id,
			Status:      payment.StatusPending,
			OrderID:     req.OrderID,
			AmountMinor: payment.MinorUnits(req.Amount),
		},
		secret: id + "_secret_" + randomHex(8),
	}
	if g.auto != "" {
		in.capture.Status = g.auto
		if g.auto == payment.StatusFailed {
			in.capture.Reason = "sandbox declined the payment"
		}
	}
	g.intents[id] = in
	if req.IdempotencyKey != "" {
		g.byKey[req.IdempotencyKey] = id
	}
	return &payment.Intent{ID: id, ClientSecret: in.secret}, nil
}

// CaptureStatus returns the current state of an intent.
func (g *Gateway) CaptureStatus(ctx context.Context, intentID string) (*payment.Capture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	in, ok := g.intents[intentID]
	if !ok {
		return nil, &payment.GatewayError{Op: "capture status", Reason: "no such intent", Err: ErrUnknownIntent}
	}
	c := in.capture
	return &c, nil
}

// Cancel marks an intent canceled. Captured intents cannot be canceled.
func (g *Gateway) Cancel(ctx context.Context, intentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	in, ok := g.intents[intentID]
	if !ok {
		return &payment.GatewayError{Op: "cancel intent", Reason: "no such intent", Err: ErrUnknownIntent}
	}
	if in.capture.Status == payment.StatusSucceeded {
		return &payment.GatewayError{Op: "cancel intent", Reason: "intent already captured", Err: payment.ErrIntentCaptured}
	}
	in.canceled = true
	in.capture.Status = payment.StatusFailed
	in.capture.Reason = "payment was canceled"
	return nil
}

// Settle moves an intent to status, as the provider would after the client
// confirmed it. Canceled intents cannot be settled.
func (g *Gateway) Settle(intentID string, status payment.Status, reason string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	in, ok := g.intents[intentID]
	if !ok {
		return errors.Wrap(ErrUnknownIntent, intentID)
	}
	if in.canceled {
		return errors.Wrap(ErrIntentCanceled, intentID)
	}
	in.capture.Status = status
	in.capture.Reason = reason
	return nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
