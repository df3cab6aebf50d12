package order

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// ErrPaymentPending is returned when the shopper reports success but the
// gateway has not settled the intent yet. The order is left untouched.
var ErrPaymentPending = errors.New("payment not settled yet")

// ValidationError lists required order fields that are missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order fields: %s", strings.Join(e.Fields, ", "))
}

// StockShortage describes one line item that cannot be served.
type StockShortage struct {
	ProductID string
	Title     string
	Requested int
	Available int
}

// InsufficientStockError is returned when at least one line item exceeds
// availability. No order is created.
type InsufficientStockError struct {
	Items []StockShortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, len(e.Items))
	for i, it := range e.Items {
		parts[i] = fmt.Sprintf("%s (requested %d, available %d)", it.ProductID, it.Requested, it.Available)
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// ConflictError is returned for an illegal state transition.
type ConflictError struct {
	OrderID   string
	Current   string
	Attempted string
	Reason    string
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("order %s: cannot move from %s to %s", e.OrderID, e.Current, e.Attempted)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// NotFoundError is returned for unknown ids.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ForbiddenError is returned when the caller may not see or act on an order.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.Reason
}

// PaymentSetupError is returned when an intent could not be issued for a
// persisted order. The order's payment is marked failed and can be retried.
type PaymentSetupError struct {
	OrderID string
	Err     error
}

func (e *PaymentSetupError) Error() string {
	return fmt.Sprintf("order %s: start payment: %v", e.OrderID, e.Err)
}

func (e *PaymentSetupError) Unwrap() error { return e.Err }
