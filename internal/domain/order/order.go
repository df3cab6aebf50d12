package order

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Status is the staff-facing fulfillment state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCollected Status = "collected"
	StatusRejected  Status = "rejected"
)

// transitions lists every legal fulfillment move. Anything else is a conflict.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCollected, StatusRejected},
}

// ParseStatus converts a raw value into a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusCollected, StatusRejected:
		return st, nil
	}
	return "", &ValidationError{Fields: []string{"orderStatus"}}
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCollected || s == StatusRejected
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// PaymentMethod is how the shopper pays for the order.
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentInPerson PaymentMethod = "in-person"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentInPerson
}

// PaymentStatus tracks the money side of the order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// LineItem is a frozen copy of a catalog product taken when the order was placed.
type LineItem struct {
	ProductID      string          `json:"productId"`
	Title          string          `json:"title"`
	Brand          string          `json:"brand,omitempty"`
	Quantity       int             `json:"quantity"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"`
	StoreLocation  string          `json:"storeLocation,omitempty"`
	ExpirationDate time.Time       `json:"expirationDate"`
	Image          string          `json:"image,omitempty"`
}

// Subtotal is price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Address is the delivery or pickup contact captured with the order.
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes,omitempty"`
}

// Order is a shopper's reservation of one or more products.
type Order struct {
	ID            string
	UserID        string
	Items         []LineItem
	Address       Address
	TotalAmount   decimal.Decimal
	OrderDate     time.Time
	UpdatedAt     time.Time
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	// PaymentID is the gateway reference of a captured card payment.
	PaymentID string
	// PaymentIntentID is the intent of the current card payment attempt.
	PaymentIntentID string
	PaymentAttempts int
	FailureReason   string
	Status          Status
	// StockReserved is true while the order holds decremented catalog stock
	// that has not been handed over or given back.
	StockReserved bool
	// Version guards concurrent writers; Repository.Update compares it.
	Version int
}

// TotalOf sums the subtotals of items.
func TotalOf(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ContainsBrand reports whether any line item belongs to brand.
func (o *Order) ContainsBrand(brand string) bool {
	for _, it := range o.Items {
		if strings.EqualFold(it.Brand, brand) {
			return true
		}
	}
	return false
}

// CartItem is a shopper's request for a quantity of a live product.
type CartItem struct {
	ProductID string
	Quantity  int
}

var (
	// ErrNotFound is returned by a Repository for unknown order ids.
	ErrNotFound = errors.New("order not found")
	// ErrStaleVersion is returned by Repository.Update when another writer
	// changed the order first.
	ErrStaleVersion = errors.New("order version is stale")
)

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	// Update writes o only if the stored version equals o.Version and
	// increments o.Version on success.
	Update(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	// List returns all orders, or only those containing brand when brand is set.
	List(ctx context.Context, brand string) ([]Order, error)
}
