package postgres

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sustainafood/grocery-orders/internal/domain/order"
)

const (
	orderColumns = `id, user_id, cart_items, address_info, total_amount, order_status,
		payment_method, payment_status, payment_id, payment_intent_id, payment_attempts,
		failure_reason, stock_reserved, version, order_date, order_update_date`

	createOrderSQL = `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	getOrderSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	// updateOrderSQL is a compare-and-swap on version. Line items, address,
	// total and payment method are fixed at creation and never written here.
	updateOrderSQL = `UPDATE orders SET
			order_status = $3,
			payment_status = $4,
			payment_id = $5,
			payment_intent_id = $6,
			payment_attempts = $7,
			failure_reason = $8,
			stock_reserved = $9,
			order_update_date = $10,
			version = version + 1
		WHERE id = $1 AND version = $2`

	orderExistsSQL = `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`

	listOrdersByUserSQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE user_id = $1 ORDER BY order_date DESC`

	listOrdersSQL = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC`

	listOrdersByBrandSQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements(cart_items) AS item
			WHERE lower(item->>'brand') = lower($1)
		)
		ORDER BY order_date DESC`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists a new order. Line items and address are serialized to JSON
// for storage in JSONB columns.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, address, err := marshalOrder(o)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, createOrderSQL,
		o.ID, o.UserID, items, address, o.TotalAmount, string(o.Status),
		string(o.PaymentMethod), string(o.PaymentStatus), o.PaymentID, o.PaymentIntentID,
		o.PaymentAttempts, o.FailureReason, o.StockReserved, o.Version,
		o.OrderDate, o.UpdatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "create order %q", o.ID)
	}
	return nil
}

// Get returns the order with the given id.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, getOrderSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %q", id)
	}

	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get order %q", id)
	}
	return &o, nil
}

// Update writes the mutable lifecycle fields of o if nobody changed it since
// it was read.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	tag, err := r.pool.Exec(ctx, updateOrderSQL,
		o.ID, o.Version, string(o.Status), string(o.PaymentStatus), o.PaymentID,
		o.PaymentIntentID, o.PaymentAttempts, o.FailureReason, o.StockReserved,
		o.UpdatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "update order %q", o.ID)
	}
	if tag.RowsAffected() == 1 {
		o.Version++
		return nil
	}

	var ok bool
	if err := r.pool.QueryRow(ctx, orderExistsSQL, o.ID).Scan(&ok); err != nil {
		return errors.Wrapf(err, "check order %q", o.ID)
	}
	if !ok {
		return order.ErrNotFound
	}
	return order.ErrStaleVersion
}

// ListByUser returns the orders placed by userID, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, listOrdersByUserSQL, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "list orders of user %q", userID)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// List returns every order, or only those with a line item of brand.
func (r *OrderRepository) List(ctx context.Context, brand string) ([]order.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if brand == "" {
		rows, err = r.pool.Query(ctx, listOrdersSQL)
	} else {
		rows, err = r.pool.Query(ctx, listOrdersByBrandSQL, brand)
	}
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return pgx.CollectRows(rows, scanOrder)
}

func marshalOrder(o *order.Order) (items, address []byte, err error) {
	items, err = json.Marshal(o.Items)
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal order items")
	}
	address, err = json.Marshal(o.Address)
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal address")
	}
	return items, address, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o                             order.Order
		items, address                []byte
		status, method, paymentStatus string
	)
	if err := row.Scan(
		&o.ID, &o.UserID, &items, &address, &o.TotalAmount, &status,
		&method, &paymentStatus, &o.PaymentID, &o.PaymentIntentID, &o.PaymentAttempts,
		&o.FailureReason, &o.StockReserved, &o.Version, &o.OrderDate, &o.UpdatedAt,
	); err != nil {
		return o, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return o, errors.Wrapf(err, "unmarshal items of order %q", o.ID)
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return o, errors.Wrapf(err, "unmarshal address of order %q", o.ID)
	}
	o.Status = order.Status(status)
	o.PaymentMethod = order.PaymentMethod(method)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)
	return o, nil
}
