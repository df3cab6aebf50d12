// Package stripe implements payment.Gateway on top of Stripe payment intents.
package stripe

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

// metadataOrderID is the intent metadata key that binds an intent to an order.
const metadataOrderID = "orderId"

// Option configures a Gateway.
type Option func(*options)

type options struct {
	backendURL string
	retries    int64
}

// WithBackendURL points the client at another API host.
func WithBackendURL(url string) Option {
	return func(o *options) { o.backendURL = url }
}

// WithMaxNetworkRetries sets how often the client retries failed requests.
func WithMaxNetworkRetries(n int64) Option {
	return func(o *options) { o.retries = n }
}

// Gateway talks to the Stripe API.
type Gateway struct {
	api      *client.API
	currency string
}

var _ payment.Gateway = (*Gateway)(nil)

// New creates a Stripe gateway charging in currency.
func New(secretKey, currency string, lg *zap.Logger, opts ...Option) (*Gateway, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}
	o := options{retries: 2}
	for _, opt := range opts {
		opt(&o)
	}

	logger := lg.Named("stripe").Sugar()
	backend := func(typ stripe.SupportedBackend) stripe.Backend {
		cfg := &stripe.BackendConfig{
			LeveledLogger:     logger,
			MaxNetworkRetries: stripe.Int64(o.retries),
		}
		if o.backendURL != "" {
			cfg.URL = stripe.String(o.backendURL)
		}
		return stripe.GetBackendWithConfig(typ, cfg)
	}

	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     backend(stripe.APIBackend),
		Connect: backend(stripe.ConnectBackend),
		Uploads: backend(stripe.UploadsBackend),
	})

	return &Gateway{api: api, currency: currency}, nil
}

// CreateIntent creates a payment intent for the order total in minor units.
func (g *Gateway) CreateIntent(ctx context.Context, req payment.CreateIntentRequest) (*payment.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(payment.MinorUnits(req.Amount)),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataOrderID, req.OrderID)
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, gatewayError("create intent", err)
	}
	return &payment.Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// CaptureStatus retrieves the intent and maps it to a capture.
func (g *Gateway) CaptureStatus(ctx context.Context, intentID string) (*payment.Capture, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, gatewayError("capture status", err)
	}
	return captureOf(pi), nil
}

// Cancel cancels the intent as abandoned. Stripe refuses to cancel an intent
// in a final state; the intent is then looked up to tell a prior
// cancellation from a capture.
func (g *Gateway) Cancel(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{
		CancellationReason: stripe.String(string(stripe.PaymentIntentCancellationReasonAbandoned)),
	}
	params.Context = ctx

	_, err := g.api.PaymentIntents.Cancel(intentID, params)
	if err == nil {
		return nil
	}
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) || stripeErr.Code != stripe.ErrorCodePaymentIntentUnexpectedState {
		return gatewayError("cancel intent", err)
	}

	get := &stripe.PaymentIntentParams{}
	get.Context = ctx
	pi, getErr := g.api.PaymentIntents.Get(intentID, get)
	if getErr != nil {
		return gatewayError("cancel intent", getErr)
	}
	switch pi.Status {
	case stripe.PaymentIntentStatusCanceled:
		return nil
	case stripe.PaymentIntentStatusSucceeded:
		return &payment.GatewayError{Op: "cancel intent", Reason: "intent already captured", Err: payment.ErrIntentCaptured}
	default:
		return gatewayError("cancel intent", err)
	}
}

func captureOf(pi *stripe.PaymentIntent) *payment.Capture {
	c := &payment.Capture{
		IntentID:    pi.ID,
		Status:      payment.StatusPending,
		OrderID:     pi.Metadata[metadataOrderID],
		AmountMinor: pi.Amount,
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		c.Status = payment.StatusSucceeded
	case stripe.PaymentIntentStatusCanceled:
		c.Status = payment.StatusFailed
		c.Reason = "payment was canceled"
		if pi.CancellationReason != "" {
			c.Reason += ": " + string(pi.CancellationReason)
		}
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		// A fresh intent also waits for a payment method; only a recorded
		// error means an attempt was made and declined.
		if pi.LastPaymentError != nil {
			c.Status = payment.StatusFailed
			c.Reason = pi.LastPaymentError.Msg
		}
	}
	return c
}

func gatewayError(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &payment.GatewayError{Op: op, Reason: stripeErr.Msg, Err: err}
	}
	return &payment.GatewayError{Op: op, Err: err}
}
