package sandbox

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

func TestGateway_Lifecycle(t *testing.T) {
	ctx := context.Background()
	g := New()

	intent, err := g.CreateIntent(ctx, payment.CreateIntentRequest{
		OrderID:        "o1",
		Amount:         decimal.RequireFromString("12.345"),
		IdempotencyKey: "order:o1:attempt:1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, intent.ClientSecret)

	c, err := g.CaptureStatus(ctx, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, c.Status)
	assert.Equal(t, "o1", c.OrderID)
	assert.Equal(t, int64(1235), c.AmountMinor)

	require.NoError(t, g.Settle(intent.ID, payment.StatusFailed, "card declined"))
	c, err = g.CaptureStatus(ctx, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusFailed, c.Status)
	assert.Equal(t, "card declined", c.Reason)
}

func TestGateway_IdempotencyKey(t *testing.T) {
	ctx := context.Background()
	g := New()
	req := payment.CreateIntentRequest{OrderID: "o1", Amount: decimal.NewFromInt(5), IdempotencyKey: "k"}

	first, err := g.CreateIntent(ctx, req)
	require.NoError(t, err)
	second, err := g.CreateIntent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	req.IdempotencyKey = "k2"
	third, err := g.CreateIntent(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestGateway_Errors(t *testing.T) {
	ctx := context.Background()
	g := New()

	_, err := g.CaptureStatus(ctx, "pi_missing")
	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.ErrorIs(t, err, ErrUnknownIntent)

	_, err = g.CreateIntent(ctx, payment.CreateIntentRequest{OrderID: "o1", Amount: decimal.Zero})
	require.ErrorAs(t, err, &gwErr)

	assert.ErrorIs(t, g.Settle("pi_missing", payment.StatusSucceeded, ""), ErrUnknownIntent)
}

func TestGateway_AutoSettle(t *testing.T) {
	ctx := context.Background()
	g := New(WithAutoSettle(payment.StatusSucceeded))

	intent, err := g.CreateIntent(ctx, payment.CreateIntentRequest{OrderID: "o1", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)

	c, err := g.CaptureStatus(ctx, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusSucceeded, c.Status)
}

func TestGateway_Cancel(t *testing.T) {
	ctx := context.Background()
	g := New()

	pending, err := g.CreateIntent(ctx, payment.CreateIntentRequest{OrderID: "o1", Amount: decimal.NewFromInt(3)})
	require.NoError(t, err)
	require.NoError(t, g.Cancel(ctx, pending.ID))
	require.NoError(t, g.Cancel(ctx, pending.ID), "cancel is repeatable")

	c, err := g.CaptureStatus(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusFailed, c.Status)
	assert.Equal(t, "payment was canceled", c.Reason)

	// A canceled intent can no longer be charged.
	assert.ErrorIs(t, g.Settle(pending.ID, payment.StatusSucceeded, ""), ErrIntentCanceled)

	captured, err := g.CreateIntent(ctx, payment.CreateIntentRequest{OrderID: "o2", Amount: decimal.NewFromInt(3)})
	require.NoError(t, err)
	require.NoError(t, g.Settle(captured.ID, payment.StatusSucceeded, ""))
	err = g.Cancel(ctx, captured.ID)
	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.ErrorIs(t, err, payment.ErrIntentCaptured)

	assert.ErrorIs(t, g.Cancel(ctx, "pi_missing"), ErrUnknownIntent)
}
