package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Unit is the measure a product is sold by.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitLiter    Unit = "L"
	UnitPiece    Unit = "pcs"
)

// Product is the descriptive state of a catalog entry at the moment it was read.
type Product struct {
	ID             string
	Title          string
	Brand          string
	Price          decimal.Decimal
	Unit           Unit
	StoreLocation  string
	ExpirationDate time.Time
	Image          string
	Quantity       int
	IsCollected    bool
}

// InsufficientStockError is returned by Reserve when the conditional
// decrement could not be applied.
type InsufficientStockError struct {
	ProductID string
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested %d)", e.ProductID, e.Requested)
}

// Store is the inventory authority. Reserve and Release must be atomic per
// product: the quantity field is never read-modified-written by callers.
type Store interface {
	// Snapshot returns the products matching ids. Missing ids are omitted.
	Snapshot(ctx context.Context, ids []string) ([]Product, error)
	// Reserve decrements quantity by qty only if at least qty units remain.
	Reserve(ctx context.Context, productID string, qty int) error
	// Release returns qty units to the product.
	Release(ctx context.Context, productID string, qty int) error
}
