// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// ConfirmPayment implements confirmPayment operation.
	//
	// The reported result is informational. The provider's view of the
	// intent decides the outcome; an unsettled intent is answered with 409.
	//
	// POST /orders/{orderId}/payment/confirm
	ConfirmPayment(ctx context.Context, req *ConfirmPaymentRequest, params ConfirmPaymentParams) (ConfirmPaymentRes, error)
	// CreateOrder implements createOrder operation.
	//
	// Snapshots catalog data, reserves stock and, for card orders, opens a
	// payment intent the client confirms against the provider.
	//
	// POST /orders
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (CreateOrderRes, error)
	// GetInvoice implements getInvoice operation.
	//
	// Download the PDF invoice.
	//
	// GET /orders/{orderId}/invoice
	GetInvoice(ctx context.Context, params GetInvoiceParams) (GetInvoiceRes, error)
	// GetOrder implements getOrder operation.
	//
	// Get an order.
	//
	// GET /orders/{orderId}
	GetOrder(ctx context.Context, params GetOrderParams) (GetOrderRes, error)
	// GetPaymentConfig implements getPaymentConfig operation.
	//
	// Settings for the client payment SDK.
	//
	// GET /payment/config
	GetPaymentConfig(ctx context.Context) (*PaymentConfig, error)
	// ListOrders implements listOrders operation.
	//
	// List orders visible to the caller.
	//
	// GET /orders
	ListOrders(ctx context.Context, params ListOrdersParams) (ListOrdersRes, error)
	// RetryPayment implements retryPayment operation.
	//
	// Open a fresh intent after a failed card payment.
	//
	// POST /orders/{orderId}/payment/retry
	RetryPayment(ctx context.Context, params RetryPaymentParams) (RetryPaymentRes, error)
	// UpdateOrderStatus implements updateOrderStatus operation.
	//
	// Staff only. Illegal transitions are answered with 409.
	//
	// PUT /orders/{orderId}/status
	UpdateOrderStatus(ctx context.Context, req *UpdateStatusRequest, params UpdateOrderStatusParams) (UpdateOrderStatusRes, error)
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
