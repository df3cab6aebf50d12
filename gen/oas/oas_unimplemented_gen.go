// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// ConfirmPayment implements confirmPayment operation.
//
// The reported result is informational. The provider's view of the
// intent decides the outcome; an unsettled intent is answered with 409.
//
// POST /orders/{orderId}/payment/confirm
func (UnimplementedHandler) ConfirmPayment(ctx context.Context, req *ConfirmPaymentRequest, params ConfirmPaymentParams) (r ConfirmPaymentRes, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateOrder implements createOrder operation.
//
// Snapshots catalog data, reserves stock and, for card orders, opens a
// payment intent the client confirms against the provider.
//
// POST /orders
func (UnimplementedHandler) CreateOrder(ctx context.Context, req *CreateOrderRequest) (r CreateOrderRes, _ error) {
	return r, ht.ErrNotImplemented
}

// GetInvoice implements getInvoice operation.
//
// Download the PDF invoice.
//
// GET /orders/{orderId}/invoice
func (UnimplementedHandler) GetInvoice(ctx context.Context, params GetInvoiceParams) (r GetInvoiceRes, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Get an order.
//
// GET /orders/{orderId}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r GetOrderRes, _ error) {
	return r, ht.ErrNotImplemented
}

// GetPaymentConfig implements getPaymentConfig operation.
//
// Settings for the client payment SDK.
//
// GET /payment/config
func (UnimplementedHandler) GetPaymentConfig(ctx context.Context) (r *PaymentConfig, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// List orders visible to the caller.
//
// GET /orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r ListOrdersRes, _ error) {
	return r, ht.ErrNotImplemented
}

// RetryPayment implements retryPayment operation.
//
// Open a fresh intent after a failed card payment.
//
// POST /orders/{orderId}/payment/retry
func (UnimplementedHandler) RetryPayment(ctx context.Context, params RetryPaymentParams) (r RetryPaymentRes, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrderStatus implements updateOrderStatus operation.
//
// Staff only. Illegal transitions are answered with 409.
//
// PUT /orders/{orderId}/status
func (UnimplementedHandler) UpdateOrderStatus(ctx context.Context, req *UpdateStatusRequest, params UpdateOrderStatusParams) (r UpdateOrderStatusRes, _ error) {
	return r, ht.ErrNotImplemented
}
