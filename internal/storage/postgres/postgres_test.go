//go:build integration

package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
	"github.com/sustainafood/grocery-orders/internal/domain/order"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "grocery",
				"POSTGRES_PASSWORD": "grocery",
				"POSTGRES_DB":       "grocery",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("start postgres: %v", err)
	}
	defer func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			log.Printf("terminate postgres: %v", err)
		}
	}()

	host, err := ctr.Host(ctx)
	if err != nil {
		log.Fatalf("host: %v", err)
	}
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("mapped port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://grocery:grocery@%s:%s/grocery?sslmode=disable", host, port.Port())
	testPool, err = NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("pool: %v", err)
	}
	defer testPool.Close()

	if err := RunMigrations(ctx, testPool); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	// Applying the schema twice must be harmless.
	if err := RunMigrations(ctx, testPool); err != nil {
		log.Fatalf("migrations (again): %v", err)
	}

	return m.Run()
}

func seedProduct(t *testing.T, id string, qty int) {
	t.Helper()
	err := NewCatalogStore(testPool).Upsert(context.Background(), []catalog.Product{{
		ID:             id,
		Title:          "Milk " + id,
		Brand:          "Monoprix",
		Price:          decimal.RequireFromString("1.20"),
		Unit:           catalog.UnitLiter,
		StoreLocation:  "Tunis",
		ExpirationDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Quantity:       qty,
	}})
	require.NoError(t, err)
}

func TestCatalogStore_ReserveRelease(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore(testPool)
	seedProduct(t, "cat-1", 3)

	require.NoError(t, store.Reserve(ctx, "cat-1", 2))

	err := store.Reserve(ctx, "cat-1", 2)
	var stockErr *catalog.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	require.NoError(t, store.Release(ctx, "cat-1", 2))

	products, err := store.Snapshot(ctx, []string{"cat-1", "missing"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 3, products[0].Quantity)
	assert.Equal(t, catalog.UnitLiter, products[0].Unit)
	assert.True(t, decimal.RequireFromString("1.20").Equal(products[0].Price))

	assert.ErrorIs(t, store.Reserve(ctx, "missing", 1), catalog.ErrNotFound)
	assert.ErrorIs(t, store.Release(ctx, "missing", 1), catalog.ErrNotFound)
}

func TestCatalogStore_ConcurrentReserve(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore(testPool)
	seedProduct(t, "cat-race", 5)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Reserve(ctx, "cat-race", 1) == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, won)
	products, err := store.Snapshot(ctx, []string{"cat-race"})
	require.NoError(t, err)
	assert.Zero(t, products[0].Quantity)
}

func newTestOrder(id, userID, brand string) *order.Order {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	items := []order.LineItem{{
		ProductID:      "cat-1",
		Title:          "Milk",
		Brand:          brand,
		Quantity:       2,
		Unit:           "L",
		Price:          decimal.RequireFromString("1.20"),
		ExpirationDate: now.AddDate(0, 0, 5),
	}}
	return &order.Order{
		ID:            id,
		UserID:        userID,
		Items:         items,
		Address:       order.Address{Address: "1 Avenue Habib Bourguiba", City: "Tunis"},
		TotalAmount:   order.TotalOf(items),
		OrderDate:     now,
		UpdatedAt:     now,
		PaymentMethod: order.PaymentCard,
		PaymentStatus: order.PaymentPending,
		Status:        order.StatusPending,
		StockReserved: true,
	}
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testPool)

	o := newTestOrder("ord-1", "user-1", "Monoprix")
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.Get(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, o.UserID, got.UserID)
	assert.Equal(t, o.Address, got.Address)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Milk", got.Items[0].Title)
	assert.True(t, o.Items[0].Price.Equal(got.Items[0].Price))
	assert.True(t, o.TotalAmount.Equal(got.TotalAmount))
	assert.Equal(t, order.StatusPending, got.Status)
	assert.True(t, got.StockReserved)
	assert.Zero(t, got.Version)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestOrderRepository_UpdateCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testPool)
	require.NoError(t, repo.Create(ctx, newTestOrder("ord-cas", "user-1", "Monoprix")))

	first, err := repo.Get(ctx, "ord-cas")
	require.NoError(t, err)
	second, err := repo.Get(ctx, "ord-cas")
	require.NoError(t, err)

	first.Status = order.StatusRejected
	first.StockReserved = false
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, 1, first.Version)

	second.PaymentStatus = order.PaymentFailed
	assert.ErrorIs(t, repo.Update(ctx, second), order.ErrStaleVersion)

	stored, err := repo.Get(ctx, "ord-cas")
	require.NoError(t, err)
	assert.Equal(t, order.StatusRejected, stored.Status)
	assert.Equal(t, order.PaymentPending, stored.PaymentStatus)
	assert.Equal(t, 1, stored.Version)

	assert.ErrorIs(t, repo.Update(ctx, newTestOrder("missing", "u", "b")), order.ErrNotFound)
}

func TestOrderRepository_UpdateKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testPool)
	require.NoError(t, repo.Create(ctx, newTestOrder("ord-frozen", "user-1", "Monoprix")))

	o, err := repo.Get(ctx, "ord-frozen")
	require.NoError(t, err)
	o.Items[0].Quantity = 99
	o.Address.City = "Sfax"
	o.TotalAmount = decimal.NewFromInt(1)
	o.PaymentMethod = order.PaymentInPerson
	o.PaymentStatus = order.PaymentFailed
	require.NoError(t, repo.Update(ctx, o))

	stored, err := repo.Get(ctx, "ord-frozen")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentFailed, stored.PaymentStatus)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, "Tunis", stored.Address.City)
	assert.True(t, decimal.RequireFromString("2.40").Equal(stored.TotalAmount))
	assert.Equal(t, order.PaymentCard, stored.PaymentMethod)
}

func TestOrderRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testPool)
	require.NoError(t, repo.Create(ctx, newTestOrder("ord-l1", "lister", "Carrefour")))
	require.NoError(t, repo.Create(ctx, newTestOrder("ord-l2", "lister", "Aziza")))

	byUser, err := repo.ListByUser(ctx, "lister")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byBrand, err := repo.List(ctx, "carrefour")
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, "ord-l1", byBrand[0].ID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 2)
}
