package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
)

const (
	productColumns = `id, title, brand, price, unit, store_location, expiration_date, image, quantity, is_collected`

	snapshotProductsSQL = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	// reserveStockSQL decrements only when enough units remain, so two
	// concurrent reservations can never drive quantity below zero.
	reserveStockSQL = `UPDATE products SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2 AND NOT is_collected`

	releaseStockSQL = `UPDATE products SET quantity = quantity + $2 WHERE id = $1`

	productExistsSQL = `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`

	upsertProductSQL = `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			brand = EXCLUDED.brand,
			price = EXCLUDED.price,
			unit = EXCLUDED.unit,
			store_location = EXCLUDED.store_location,
			expiration_date = EXCLUDED.expiration_date,
			image = EXCLUDED.image,
			quantity = EXCLUDED.quantity,
			is_collected = EXCLUDED.is_collected`
)

var _ catalog.Store = (*CatalogStore)(nil)

// CatalogStore implements catalog.Store backed by PostgreSQL.
type CatalogStore struct {
	pool *pgxpool.Pool
}

// NewCatalogStore returns a CatalogStore that uses the given pool.
func NewCatalogStore(pool *pgxpool.Pool) *CatalogStore {
	return &CatalogStore{pool: pool}
}

// Snapshot returns the products matching ids.
func (s *CatalogStore) Snapshot(ctx context.Context, ids []string) ([]catalog.Product, error) {
	rows, err := s.pool.Query(ctx, snapshotProductsSQL, ids)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot products")
	}
	return pgx.CollectRows(rows, scanProduct)
}

// Reserve atomically takes qty units of a product.
func (s *CatalogStore) Reserve(ctx context.Context, id string, qty int) error {
	tag, err := s.pool.Exec(ctx, reserveStockSQL, id, qty)
	if err != nil {
		return errors.Wrapf(err, "reserve %d of product %q", qty, id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	if err := s.exists(ctx, id); err != nil {
		return err
	}
	return &catalog.InsufficientStockError{ProductID: id, Requested: qty}
}

// Release atomically returns qty units of a product.
func (s *CatalogStore) Release(ctx context.Context, id string, qty int) error {
	tag, err := s.pool.Exec(ctx, releaseStockSQL, id, qty)
	if err != nil {
		return errors.Wrapf(err, "release %d of product %q", qty, id)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Upsert inserts or replaces products in a single batch.
func (s *CatalogStore) Upsert(ctx context.Context, products []catalog.Product) error {
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(upsertProductSQL,
			p.ID, p.Title, p.Brand, p.Price, string(p.Unit), p.StoreLocation,
			p.ExpirationDate, p.Image, p.Quantity, p.IsCollected,
		)
	}
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return errors.Wrapf(err, "upsert %d products", len(products))
	}
	return nil
}

func (s *CatalogStore) exists(ctx context.Context, id string) error {
	var ok bool
	if err := s.pool.QueryRow(ctx, productExistsSQL, id).Scan(&ok); err != nil {
		return errors.Wrapf(err, "check product %q", id)
	}
	if !ok {
		return catalog.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.CollectableRow) (catalog.Product, error) {
	var (
		p    catalog.Product
		unit string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Brand, &p.Price, &unit, &p.StoreLocation,
		&p.ExpirationDate, &p.Image, &p.Quantity, &p.IsCollected,
	)
	p.Unit = catalog.Unit(unit)
	return p, err
}
