// Package handler exposes the order service through the ogen-generated API.
package handler

import (
	"context"
	"io"

	"github.com/sustainafood/grocery-orders/gen/oas"
	"github.com/sustainafood/grocery-orders/internal/domain/auth"
	"github.com/sustainafood/grocery-orders/internal/domain/order"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// OrderService is the order lifecycle the handlers delegate to.
type OrderService interface {
	Create(ctx context.Context, caller auth.Caller, req order.CreateRequest) (*order.CreateResult, error)
	ConfirmPayment(ctx context.Context, caller auth.Caller, req order.ConfirmRequest) (*order.Order, error)
	RetryPayment(ctx context.Context, caller auth.Caller, id string) (*order.CreateResult, error)
	UpdateStatus(ctx context.Context, caller auth.Caller, id string, next order.Status) (*order.Order, error)
	Get(ctx context.Context, caller auth.Caller, id string) (*order.Order, error)
	List(ctx context.Context, caller auth.Caller, userID string) ([]order.Order, error)
	Invoice(ctx context.Context, caller auth.Caller, id string, w io.Writer) error
}

var _ OrderService = (*order.Service)(nil)

// HandlerConfig holds non-dependency configuration for the Handler.
type HandlerConfig struct {
	// PublishableKey is handed to clients to confirm card payments.
	PublishableKey string
	// Provider names the payment provider in use, e.g. "stripe".
	Provider string
	Currency string
}

// Handler implements the ogen-generated Handler interface, delegating business
// logic to the order service.
type Handler struct {
	oas.UnimplementedHandler

	orders OrderService
	cfg    HandlerConfig
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(cfg HandlerConfig, orders OrderService) *Handler {
	return &Handler{orders: orders, cfg: cfg}
}

// caller returns the identity stored by HandleBearerAuth. The generated
// server runs the security handler before every operation.
func caller(ctx context.Context) auth.Caller {
	c, _ := CallerFromContext(ctx)
	return c
}
