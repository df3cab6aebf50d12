package invoice

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainafood/grocery-orders/internal/domain/order"
)

func testOrder() *order.Order {
	date := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	items := []order.LineItem{
		{ProductID: "p1", Title: "Crème fraîche", Quantity: 2, Unit: "pcs", Price: decimal.RequireFromString("1.95")},
		{ProductID: "p2", Title: "Pommes", Quantity: 1, Unit: "kg", Price: decimal.RequireFromString("2.40")},
	}
	return &order.Order{
		ID:            "o1",
		UserID:        "u1",
		Items:         items,
		Address:       order.Address{Address: "12 Rue de Marseille", City: "Tunis", Pincode: "1000", Phone: "+21620000000"},
		TotalAmount:   order.TotalOf(items),
		OrderDate:     date,
		UpdatedAt:     date,
		PaymentMethod: order.PaymentCard,
		PaymentStatus: order.PaymentCompleted,
		PaymentID:     "pi_1",
		Status:        order.StatusConfirmed,
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer("SustainaFood", "Reducing food waste together")

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, testOrder()))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")), "missing PDF trailer")
}

func TestRenderer_Deterministic(t *testing.T) {
	r := NewRenderer("SustainaFood", "")

	var a, b bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &a, testOrder()))
	require.NoError(t, r.Render(context.Background(), &b, testOrder()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRenderer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.ErrorIs(t, NewRenderer("SustainaFood", "").Render(ctx, &buf, testOrder()), context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "invoice-o1.pdf", FileName("o1"))
}
