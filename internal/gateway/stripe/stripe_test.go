package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

func newTestGateway(t *testing.T, h http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	g, err := New("sk_test_123", "eur", zap.NewNop(),
		WithBackendURL(srv.URL),
		WithMaxNetworkRetries(0),
	)
	require.NoError(t, err)
	return g
}

func TestGateway_CreateIntent(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "order:o1:attempt:1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2050", r.PostForm.Get("amount"))
		assert.Equal(t, "eur", r.PostForm.Get("currency"))
		assert.Equal(t, "o1", r.PostForm.Get("metadata[orderId]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc","status":"requires_payment_method","amount":2050}`))
	})

	intent, err := g.CreateIntent(context.Background(), payment.CreateIntentRequest{
		OrderID:        "o1",
		Amount:         decimal.RequireFromString("20.50"),
		IdempotencyKey: "order:o1:attempt:1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
}

func TestGateway_CaptureStatus(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"succeeded","amount":2050,"metadata":{"orderId":"o1"}}`))
	})

	c, err := g.CaptureStatus(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, &payment.Capture{
		IntentID:    "pi_123",
		Status:      payment.StatusSucceeded,
		OrderID:     "o1",
		AmountMinor: 2050,
	}, c)
}

func TestGateway_APIError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent: 'pi_x'"}}`))
	})

	_, err := g.CaptureStatus(context.Background(), "pi_x")

	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "capture status", gwErr.Op)
	assert.Equal(t, "No such payment_intent: 'pi_x'", gwErr.Reason)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New("", "eur", zap.NewNop())
	require.Error(t, err)
}

func TestCaptureOf(t *testing.T) {
	tests := []struct {
		name       string
		pi         stripe.PaymentIntent
		wantStatus payment.Status
		wantReason string
	}{
		{
			name:       "succeeded",
			pi:         stripe.PaymentIntent{Status: stripe.PaymentIntentStatusSucceeded},
			wantStatus: payment.StatusSucceeded,
		},
		{
			name:       "awaiting method",
			pi:         stripe.PaymentIntent{Status: stripe.PaymentIntentStatusRequiresPaymentMethod},
			wantStatus: payment.StatusPending,
		},
		{
			name: "declined",
			pi: stripe.PaymentIntent{
				Status:           stripe.PaymentIntentStatusRequiresPaymentMethod,
				LastPaymentError: &stripe.Error{Msg: "Your card was declined."},
			},
			wantStatus: payment.StatusFailed,
			wantReason: "Your card was declined.",
		},
		{
			name: "canceled",
			pi: stripe.PaymentIntent{
				Status:             stripe.PaymentIntentStatusCanceled,
				CancellationReason: stripe.PaymentIntentCancellationReasonAbandoned,
			},
			wantStatus: payment.StatusFailed,
			wantReason: "payment was canceled: abandoned",
		},
		{
			name:       "processing",
			pi:         stripe.PaymentIntent{Status: stripe.PaymentIntentStatusProcessing},
			wantStatus: payment.StatusPending,
		},
		{
			name:       "requires action",
			pi:         stripe.PaymentIntent{Status: stripe.PaymentIntentStatusRequiresAction},
			wantStatus: payment.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := captureOf(&tt.pi)
			assert.Equal(t, tt.wantStatus, c.Status)
			assert.Equal(t, tt.wantReason, c.Reason)
		})
	}
}

func TestGateway_Cancel(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123/cancel", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "abandoned", r.PostForm.Get("cancellation_reason"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"canceled","cancellation_reason":"abandoned"}`))
	})

	require.NoError(t, g.Cancel(context.Background(), "pi_123"))
}

func TestGateway_CancelFinalIntent(t *testing.T) {
	const unexpectedState = `{"error":{"type":"invalid_request_error","code":"payment_intent_unexpected_state","message":"This PaymentIntent's status is final."}}`

	for _, tt := range []struct {
		name     string
		status   string
		captured bool
	}{
		{name: "already canceled", status: "canceled"},
		{name: "captured", status: "succeeded", captured: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if r.Method == http.MethodPost {
					w.WriteHeader(http.StatusBadRequest)
					_, _ = w.Write([]byte(unexpectedState))
					return
				}
				assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
				_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"` + tt.status + `"}`))
			})

			err := g.Cancel(context.Background(), "pi_123")
			if !tt.captured {
				require.NoError(t, err)
				return
			}
			var gwErr *payment.GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.ErrorIs(t, err, payment.ErrIntentCaptured)
		})
	}
}
