package order

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainafood/grocery-orders/internal/domain/auth"
	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

// --- Mock implementations ---

type mockCatalog struct {
	mu       sync.Mutex
	products map[string]catalog.Product
	reserves int
	releases int
	// failReserve forces Reserve to report a lost race for this product.
	failReserve string
}

func newCatalog(products ...catalog.Product) *mockCatalog {
	m := &mockCatalog{products: make(map[string]catalog.Product, len(products))}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockCatalog) Snapshot(_ context.Context, ids []string) ([]catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []catalog.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockCatalog) Reserve(_ context.Context, id string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return catalog.ErrNotFound
	}
	if id == m.failReserve || p.Quantity < qty {
		return &catalog.InsufficientStockError{ProductID: id, Requested: qty}
	}
	p.Quantity -= qty
	m.products[id] = p
	m.reserves++
	return nil
}

func (m *mockCatalog) Release(_ context.Context, id string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.products[id]
	p.Quantity += qty
	m.products[id] = p
	m.releases++
	return nil
}

func (m *mockCatalog) quantity(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Quantity
}

type mockOrderRepo struct {
	mu        sync.Mutex
	orders    map[string]Order
	createErr error
	// staleOnce makes the next Update lose an optimistic-locking race.
	staleOnce bool
}

func newOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, o *Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (m *mockOrderRepo) Get(_ context.Context, id string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := cloneOrder(o)
	return &c, nil
}

func (m *mockOrderRepo) Update(_ context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.staleOnce {
		m.staleOnce = false
		return ErrStaleVersion
	}
	stored, ok := m.orders[o.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != o.Version {
		return ErrStaleVersion
	}
	o.Version++
	m.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (m *mockOrderRepo) List(_ context.Context, brand string) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, o := range m.orders {
		if brand == "" || o.ContainsBrand(brand) {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (m *mockOrderRepo) stored(t *testing.T, id string) Order {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	require.True(t, ok, "order %s not stored", id)
	return cloneOrder(o)
}

func cloneOrder(o Order) Order {
	o.Items = append([]LineItem(nil), o.Items...)
	return o
}

type mockGateway struct {
	mu         sync.Mutex
	intents    map[string]payment.CreateIntentRequest
	captures   map[string]*payment.Capture
	canceled   []string
	createErr  error
	captureErr error
	cancelErr  error
	seq        int
}

func newGateway() *mockGateway {
	return &mockGateway{
		intents:  make(map[string]payment.CreateIntentRequest),
		captures: make(map[string]*payment.Capture),
	}
}

func (m *mockGateway) CreateIntent(_ context.Context, req payment.CreateIntentRequest) (*payment.Intent, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := fmt.Sprintf("pi_%d", m.seq)
	m.intents[id] = req
	m.captures[id] = &payment.Capture{
		IntentID:    id,
		Status:      payment.StatusPending,
		OrderID:     req.OrderID,
		AmountMinor: payment.MinorUnits(req.Amount),
	}
	return &payment.Intent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (m *mockGateway) CaptureStatus(_ context.Context, id string) (*payment.Capture, error) {
	if m.captureErr != nil {
		return nil, m.captureErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.captures[id]
	if !ok {
		return nil, &payment.GatewayError{Op: "capture status", Reason: "no such intent"}
	}
	cp := *c
	return &cp, nil
}

func (m *mockGateway) Cancel(_ context.Context, id string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.captures[id]
	if !ok {
		return &payment.GatewayError{Op: "cancel intent", Reason: "no such intent"}
	}
	if c.Status == payment.StatusSucceeded {
		return &payment.GatewayError{Op: "cancel intent", Err: payment.ErrIntentCaptured}
	}
	c.Status = payment.StatusFailed
	m.canceled = append(m.canceled, id)
	return nil
}

// settle ignores cancellation so tests can model a capture that reached the
// provider before the cancel did.
func (m *mockGateway) settle(id string, status payment.Status, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captures[id].Status = status
	m.captures[id].Reason = reason
}

type mockRenderer struct {
	rendered []string
}

func (m *mockRenderer) Render(_ context.Context, w io.Writer, o *Order) error {
	m.rendered = append(m.rendered, o.ID)
	_, err := io.WriteString(w, "invoice "+o.ID)
	return err
}

// --- Helpers ---

var (
	shopper    = auth.Caller{UserID: "u1", Role: auth.RoleUser}
	otherUser  = auth.Caller{UserID: "u2", Role: auth.RoleUser}
	superAdmin = auth.Caller{UserID: "s1", Role: auth.RoleSuperAdmin}
	brandAdmin = auth.Caller{UserID: "a1", Role: auth.RoleAdmin, Brand: "monoprix"}
	otherAdmin = auth.Caller{UserID: "a2", Role: auth.RoleAdmin, Brand: "carrefour"}
	noBrandAdm = auth.Caller{UserID: "a3", Role: auth.RoleAdmin, Brand: "none"}
)

func newTestProduct(id string, price string, qty int) catalog.Product {
	return catalog.Product{
		ID:             id,
		Title:          "Yogurt " + id,
		Brand:          "monoprix",
		Price:          decimal.RequireFromString(price),
		Unit:           catalog.UnitPiece,
		StoreLocation:  "Tunis Centre",
		ExpirationDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Image:          id + ".jpg",
		Quantity:       qty,
	}
}

type fixture struct {
	svc      *Service
	catalog  *mockCatalog
	orders   *mockOrderRepo
	gateway  *mockGateway
	renderer *mockRenderer
}

func newFixture(t *testing.T, products ...catalog.Product) *fixture {
	t.Helper()
	f := &fixture{
		catalog:  newCatalog(products...),
		orders:   newOrderRepo(),
		gateway:  newGateway(),
		renderer: &mockRenderer{},
	}
	svc, err := NewService(f.catalog, f.orders, f.gateway, f.renderer,
		WithClock(func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)
	f.svc = svc
	return f
}

var testAddress = Address{Address: "12 Rue de Marseille", City: "Tunis", Pincode: "1000", Phone: "+21620000000"}

func (f *fixture) placeCard(t *testing.T, productID string, qty int) *CreateResult {
	t.Helper()
	res, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items:         []CartItem{{ProductID: productID, Quantity: qty}},
		Address:       testAddress,
		PaymentMethod: PaymentCard,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Intent)
	return res
}

func (f *fixture) seed(o Order) {
	f.orders.orders[o.ID] = o
}

// --- Creation ---

func TestCreate_InPerson(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "3.25", 5))

	res, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items:         []CartItem{{ProductID: "P", Quantity: 2}},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})
	require.NoError(t, err)

	o := res.Order
	assert.Nil(t, res.Intent)
	assert.True(t, decimal.RequireFromString("6.50").Equal(o.TotalAmount))
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.Empty(t, o.PaymentID)
	assert.True(t, o.StockReserved)
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, 3, f.catalog.quantity("P"))
	assert.Equal(t, 1, f.catalog.reserves)

	stored := f.orders.stored(t, o.ID)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Yogurt P", stored.Items[0].Title)
	assert.Equal(t, testAddress, stored.Address)
}

func TestCreate_SnapshotIsFrozen(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "3.25", 5))

	res, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items:         []CartItem{{ProductID: "P", Quantity: 1}},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})
	require.NoError(t, err)

	p := f.catalog.products["P"]
	p.Price = decimal.RequireFromString("99.00")
	p.Title = "Renamed"
	f.catalog.products["P"] = p

	got, err := f.svc.Get(context.Background(), shopper, res.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yogurt P", got.Items[0].Title)
	assert.True(t, decimal.RequireFromString("3.25").Equal(got.TotalAmount))
}

func TestCreate_InsufficientStock(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "3.25", 1), newTestProduct("Q", "1.00", 4))

	_, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items: []CartItem{
			{ProductID: "P", Quantity: 2},
			{ProductID: "Q", Quantity: 1},
		},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Items, 1)
	assert.Equal(t, "P", stockErr.Items[0].ProductID)
	assert.Equal(t, 2, stockErr.Items[0].Requested)
	assert.Equal(t, 1, stockErr.Items[0].Available)

	assert.Equal(t, 1, f.catalog.quantity("P"))
	assert.Equal(t, 4, f.catalog.quantity("Q"))
	assert.Zero(t, f.catalog.reserves)
	assert.Empty(t, f.orders.orders)
}

func TestCreate_DuplicateLinesAreSummed(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "1.00", 3))

	_, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items: []CartItem{
			{ProductID: "P", Quantity: 2},
			{ProductID: "P", Quantity: 2},
		},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Items[0].Requested)
	assert.Equal(t, 3, f.catalog.quantity("P"))
}

func TestCreate_CollectedProductIsUnavailable(t *testing.T) {
	p := newTestProduct("P", "1.00", 3)
	p.IsCollected = true
	f := newFixture(t, p)

	_, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items:         []CartItem{{ProductID: "P", Quantity: 1}},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Zero(t, stockErr.Items[0].Available)
}

func TestCreate_ReserveRaceLost(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "1.00", 5), newTestProduct("Q", "2.00", 5))
	f.catalog.failReserve = "Q"

	_, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items: []CartItem{
			{ProductID: "P", Quantity: 2},
			{ProductID: "Q", Quantity: 1},
		},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Q", stockErr.Items[0].ProductID)
	assert.Equal(t, 5, f.catalog.quantity("P"), "reservation of P must be rolled back")
	assert.Equal(t, 1, f.catalog.releases)
	assert.Empty(t, f.orders.orders)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "1.00", 5))

	tests := []struct {
		name   string
		caller auth.Caller
		req    CreateRequest
		want   []string
	}{
		{
			name:   "empty cart",
			caller: shopper,
			req:    CreateRequest{Address: testAddress, PaymentMethod: PaymentCard},
			want:   []string{"cartItems"},
		},
		{
			name:   "missing address and method",
			caller: shopper,
			req:    CreateRequest{Items: []CartItem{{ProductID: "P", Quantity: 1}}},
			want:   []string{"addressInfo.address", "paymentMethod"},
		},
		{
			name:   "bad quantity",
			caller: shopper,
			req: CreateRequest{
				Items:         []CartItem{{ProductID: "P", Quantity: 0}},
				Address:       testAddress,
				PaymentMethod: PaymentInPerson,
			},
			want: []string{"cartItems[0].quantity"},
		},
		{
			name:   "unknown product",
			caller: shopper,
			req: CreateRequest{
				Items:         []CartItem{{ProductID: "P", Quantity: 1}, {ProductID: "X", Quantity: 1}},
				Address:       testAddress,
				PaymentMethod: PaymentInPerson,
			},
			want: []string{"cartItems[1].productId"},
		},
		{
			name:   "anonymous caller",
			caller: auth.Caller{},
			req: CreateRequest{
				Items:         []CartItem{{ProductID: "P", Quantity: 1}},
				Address:       testAddress,
				PaymentMethod: PaymentInPerson,
			},
			want: []string{"userId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), tt.caller, tt.req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.Fields)
			assert.Equal(t, 5, f.catalog.quantity("P"))
		})
	}
}

func TestCreate_PersistFailureReleasesStock(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "1.00", 5))
	f.orders.createErr = errors.New("db write failed")

	_, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items:         []CartItem{{ProductID: "P", Quantity: 2}},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")
	assert.Equal(t, 5, f.catalog.quantity("P"))
}

func TestCreate_Card(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))

	res := f.placeCard(t, "P", 2)

	assert.Equal(t, "pi_1", res.Intent.ID)
	assert.Equal(t, "pi_1_secret", res.Intent.ClientSecret)
	assert.Equal(t, 3, f.catalog.quantity("P"))

	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, "pi_1", stored.PaymentIntentID)
	assert.Equal(t, 1, stored.PaymentAttempts)
	assert.Equal(t, PaymentPending, stored.PaymentStatus)
	assert.Equal(t, StatusPending, stored.Status)

	req := f.gateway.intents["pi_1"]
	assert.Equal(t, res.Order.ID, req.OrderID)
	assert.True(t, decimal.RequireFromString("20.00").Equal(req.Amount))
	assert.Equal(t, "order:"+res.Order.ID+":attempt:1", req.IdempotencyKey)
}

func TestCreate_CardIntentFailure(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	f.gateway.createErr = &payment.GatewayError{Op: "create intent", Reason: "api key invalid"}

	_, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items:         []CartItem{{ProductID: "P", Quantity: 2}},
		Address:       testAddress,
		PaymentMethod: PaymentCard,
	})

	var setupErr *PaymentSetupError
	require.ErrorAs(t, err, &setupErr)
	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "api key invalid", gwErr.Reason)

	stored := f.orders.stored(t, setupErr.OrderID)
	assert.Equal(t, PaymentFailed, stored.PaymentStatus)
	assert.Equal(t, StatusPending, stored.Status)
	assert.False(t, stored.StockReserved)
	assert.Equal(t, 5, f.catalog.quantity("P"))
}

// --- Payment confirmation ---

func TestConfirmPayment_Succeeded(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusSucceeded, "")

	o, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      res.Order.ID,
		IntentID:     res.Intent.ID,
		ClientResult: payment.StatusSucceeded,
	})
	require.NoError(t, err)

	assert.Equal(t, PaymentCompleted, o.PaymentStatus)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, res.Intent.ID, o.PaymentID)
	assert.Equal(t, 3, f.catalog.quantity("P"))
	assert.Equal(t, 1, f.catalog.reserves)
	assert.Zero(t, f.catalog.releases)
}

func TestConfirmPayment_Idempotent(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusSucceeded, "")

	req := ConfirmRequest{OrderID: res.Order.ID, IntentID: res.Intent.ID, ClientResult: payment.StatusSucceeded}
	first, err := f.svc.ConfirmPayment(context.Background(), shopper, req)
	require.NoError(t, err)
	second, err := f.svc.ConfirmPayment(context.Background(), shopper, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, f.catalog.quantity("P"))
	assert.Equal(t, 1, f.catalog.reserves)
}

func TestConfirmPayment_ClientClaimNotTrusted(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 1)

	_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      res.Order.ID,
		IntentID:     res.Intent.ID,
		ClientResult: payment.StatusSucceeded,
	})
	require.ErrorIs(t, err, ErrPaymentPending)

	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, PaymentPending, stored.PaymentStatus)
	assert.Equal(t, StatusPending, stored.Status)
	assert.True(t, stored.StockReserved)
	assert.Equal(t, 4, f.catalog.quantity("P"))
}

func TestConfirmPayment_Failed(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusFailed, "Your card was declined.")

	o, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      res.Order.ID,
		IntentID:     res.Intent.ID,
		ClientResult: payment.StatusFailed,
		ClientError:  "card_declined",
	})
	require.NoError(t, err)

	assert.Equal(t, PaymentFailed, o.PaymentStatus)
	assert.Equal(t, StatusPending, o.Status)
	assert.Empty(t, o.PaymentID)
	assert.Equal(t, "Your card was declined.", o.FailureReason)
	assert.False(t, o.StockReserved)
	assert.Equal(t, 5, f.catalog.quantity("P"))
	assert.Equal(t, []string{res.Intent.ID}, f.gateway.canceled)

	// Repeating the failed confirmation does not release twice.
	again, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:  res.Order.ID,
		IntentID: res.Intent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, again.PaymentStatus)
	assert.Equal(t, 5, f.catalog.quantity("P"))
	assert.Equal(t, 1, f.catalog.releases)
}

func TestConfirmPayment_ClientReportedFailureWhilePending(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 1)

	_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      res.Order.ID,
		IntentID:     res.Intent.ID,
		ClientResult: payment.StatusFailed,
		ClientError:  "authentication required",
	})
	require.ErrorIs(t, err, ErrPaymentPending)

	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, PaymentPending, stored.PaymentStatus)
	assert.Empty(t, stored.FailureReason)
	assert.True(t, stored.StockReserved)
	assert.Equal(t, 4, f.catalog.quantity("P"))
	assert.Empty(t, f.gateway.canceled)

	// The shopper completes authentication; the still-live intent confirms.
	f.gateway.settle(res.Intent.ID, payment.StatusSucceeded, "")
	o, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:  res.Order.ID,
		IntentID: res.Intent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, res.Intent.ID, o.PaymentID)
	assert.Equal(t, 4, f.catalog.quantity("P"))
}

func TestConfirmPayment_CapturedAfterFailure(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusFailed, "Your card was declined.")

	req := ConfirmRequest{OrderID: res.Order.ID, IntentID: res.Intent.ID}
	o, err := f.svc.ConfirmPayment(context.Background(), shopper, req)
	require.NoError(t, err)
	require.Equal(t, PaymentFailed, o.PaymentStatus)
	require.Equal(t, 5, f.catalog.quantity("P"))

	// The capture reached the provider before the cancel did.
	f.gateway.settle(res.Intent.ID, payment.StatusSucceeded, "")

	o, err = f.svc.ConfirmPayment(context.Background(), shopper, req)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, PaymentCompleted, o.PaymentStatus)
	assert.Equal(t, res.Intent.ID, o.PaymentID)
	assert.Empty(t, o.FailureReason)
	assert.True(t, o.StockReserved)
	assert.Equal(t, 3, f.catalog.quantity("P"))
	assert.Equal(t, 2, f.catalog.reserves)

	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, StatusConfirmed, stored.Status)
	assert.Equal(t, res.Intent.ID, stored.PaymentID)
}

func TestConfirmPayment_CapturedAfterFailureStockGone(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 2))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusFailed, "Your card was declined.")

	req := ConfirmRequest{OrderID: res.Order.ID, IntentID: res.Intent.ID}
	_, err := f.svc.ConfirmPayment(context.Background(), shopper, req)
	require.NoError(t, err)

	// Another shopper takes the released stock.
	f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusSucceeded, "")

	o, err := f.svc.ConfirmPayment(context.Background(), shopper, req)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, o.Status)
	assert.Equal(t, PaymentCompleted, o.PaymentStatus)
	assert.Equal(t, res.Intent.ID, o.PaymentID)
	assert.Contains(t, o.FailureReason, "refund required")
	assert.False(t, o.StockReserved)
	assert.Equal(t, 0, f.catalog.quantity("P"))
}

func TestConfirmPayment_CancelError(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusFailed, "Your card was declined.")
	f.gateway.cancelErr = errors.New("connection reset")

	_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:  res.Order.ID,
		IntentID: res.Intent.ID,
	})
	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)

	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, PaymentPending, stored.PaymentStatus)
	assert.True(t, stored.StockReserved)
	assert.Equal(t, 3, f.catalog.quantity("P"))
}

func TestConfirmPayment_Mismatch(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusSucceeded, "")
	f.gateway.captures[res.Intent.ID].AmountMinor = 100

	o, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      res.Order.ID,
		IntentID:     res.Intent.ID,
		ClientResult: payment.StatusSucceeded,
	})
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, o.PaymentStatus)
	assert.Contains(t, o.FailureReason, "does not match order total")
	assert.Equal(t, 5, f.catalog.quantity("P"))
}

func TestConfirmPayment_ForeignIntent(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	first := f.placeCard(t, "P", 1)
	second := f.placeCard(t, "P", 1)
	f.gateway.settle(second.Intent.ID, payment.StatusSucceeded, "")

	o, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      first.Order.ID,
		IntentID:     second.Intent.ID,
		ClientResult: payment.StatusSucceeded,
	})
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, o.PaymentStatus)
	assert.Equal(t, StatusPending, o.Status)
}

func TestConfirmPayment_GatewayError(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.captureErr = errors.New("connection reset")

	_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      res.Order.ID,
		IntentID:     res.Intent.ID,
		ClientResult: payment.StatusSucceeded,
	})

	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)
	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, PaymentPending, stored.PaymentStatus)
	assert.True(t, stored.StockReserved)
	assert.Equal(t, 3, f.catalog.quantity("P"))
}

func TestConfirmPayment_Rejections(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	f.seed(Order{ID: "o-inperson", UserID: "u1", PaymentMethod: PaymentInPerson, PaymentStatus: PaymentPending, Status: StatusPending})
	f.seed(Order{ID: "o-rejected", UserID: "u1", PaymentMethod: PaymentCard, PaymentStatus: PaymentPending, Status: StatusRejected, PaymentIntentID: "pi_x"})

	t.Run("in-person order", func(t *testing.T) {
		_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{OrderID: "o-inperson", IntentID: "pi_x"})
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
	})
	t.Run("rejected order", func(t *testing.T) {
		_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{OrderID: "o-rejected", IntentID: "pi_x"})
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, "rejected", cErr.Current)
	})
	t.Run("unknown order", func(t *testing.T) {
		_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{OrderID: "missing", IntentID: "pi_x"})
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})
	t.Run("other shopper", func(t *testing.T) {
		_, err := f.svc.ConfirmPayment(context.Background(), otherUser, ConfirmRequest{OrderID: "o-inperson", IntentID: "pi_x"})
		var fErr *ForbiddenError
		require.ErrorAs(t, err, &fErr)
	})
	t.Run("missing intent", func(t *testing.T) {
		_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{OrderID: "o-inperson"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestConfirmPayment_ConcurrentWriterLoses(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusFailed, "declined")
	f.orders.staleOnce = true

	_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:  res.Order.ID,
		IntentID: res.Intent.ID,
	})

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 3, f.catalog.quantity("P"), "stock must not be released when the write lost")
}

// --- Payment retry ---

func TestRetryPayment(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusFailed, "declined")
	_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{OrderID: res.Order.ID, IntentID: res.Intent.ID})
	require.NoError(t, err)
	require.Equal(t, 5, f.catalog.quantity("P"))

	retry, err := f.svc.RetryPayment(context.Background(), shopper, res.Order.ID)
	require.NoError(t, err)

	assert.Equal(t, res.Order.ID, retry.Order.ID)
	assert.NotEqual(t, res.Intent.ID, retry.Intent.ID)
	assert.Equal(t, PaymentPending, retry.Order.PaymentStatus)
	assert.Equal(t, 2, retry.Order.PaymentAttempts)
	assert.Equal(t, 3, f.catalog.quantity("P"))
	assert.Len(t, f.orders.orders, 1)

	f.gateway.settle(retry.Intent.ID, payment.StatusSucceeded, "")
	o, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{
		OrderID:      res.Order.ID,
		IntentID:     retry.Intent.ID,
		ClientResult: payment.StatusSucceeded,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, retry.Intent.ID, o.PaymentID)
	assert.Equal(t, 3, f.catalog.quantity("P"))
}

func TestRetryPayment_StockGone(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 2))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusFailed, "declined")
	_, err := f.svc.ConfirmPayment(context.Background(), shopper, ConfirmRequest{OrderID: res.Order.ID, IntentID: res.Intent.ID})
	require.NoError(t, err)

	// Another shopper claims the released stock.
	_ = f.placeCard(t, "P", 2)

	_, err = f.svc.RetryPayment(context.Background(), shopper, res.Order.ID)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, PaymentFailed, stored.PaymentStatus)
	assert.False(t, stored.StockReserved)
}

func TestRetryPayment_NotFailed(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 1)

	_, err := f.svc.RetryPayment(context.Background(), shopper, res.Order.ID)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 4, f.catalog.quantity("P"))
}

// --- Staff status updates ---

func TestUpdateStatus_TransitionTable(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCollected, StatusRejected}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusRejected}:    true,
		{StatusConfirmed, StatusCollected}: true,
		{StatusConfirmed, StatusRejected}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				f := newFixture(t)
				f.seed(Order{
					ID:            "o1",
					UserID:        "u1",
					PaymentMethod: PaymentInPerson,
					PaymentStatus: PaymentPending,
					Status:        from,
				})

				o, err := f.svc.UpdateStatus(context.Background(), superAdmin, "o1", to)
				if allowed[[2]Status{from, to}] {
					require.NoError(t, err)
					assert.Equal(t, to, o.Status)
					assert.Equal(t, to, f.orders.stored(t, "o1").Status)
					return
				}

				var cErr *ConflictError
				require.ErrorAs(t, err, &cErr)
				assert.Equal(t, string(from), cErr.Current)
				assert.Equal(t, string(to), cErr.Attempted)
				assert.Equal(t, from, f.orders.stored(t, "o1").Status)
				assert.Zero(t, f.orders.stored(t, "o1").Version)
			})
		}
	}
}

func TestUpdateStatus_CollectedToConfirmed(t *testing.T) {
	f := newFixture(t)
	f.seed(Order{ID: "o1", UserID: "u1", PaymentMethod: PaymentCard, PaymentStatus: PaymentCompleted, PaymentID: "pi_1", Status: StatusCollected, Version: 4})

	_, err := f.svc.UpdateStatus(context.Background(), superAdmin, "o1", StatusConfirmed)

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Error(), "cannot move from collected to confirmed")
	stored := f.orders.stored(t, "o1")
	assert.Equal(t, StatusCollected, stored.Status)
	assert.Equal(t, 4, stored.Version)
}

func TestUpdateStatus_CardMustBeCaptured(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 1)

	_, err := f.svc.UpdateStatus(context.Background(), superAdmin, res.Order.ID, StatusConfirmed)

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "card payment has not been captured", cErr.Reason)
}

func TestUpdateStatus_RejectReleasesStockOnce(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res, err := f.svc.Create(context.Background(), shopper, CreateRequest{
		Items:         []CartItem{{ProductID: "P", Quantity: 2}},
		Address:       testAddress,
		PaymentMethod: PaymentInPerson,
	})
	require.NoError(t, err)
	require.Equal(t, 3, f.catalog.quantity("P"))

	o, err := f.svc.UpdateStatus(context.Background(), brandAdmin, res.Order.ID, StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, o.Status)
	assert.False(t, o.StockReserved)
	assert.Equal(t, 5, f.catalog.quantity("P"))

	_, err = f.svc.UpdateStatus(context.Background(), brandAdmin, res.Order.ID, StatusRejected)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 5, f.catalog.quantity("P"))
}

func TestUpdateStatus_RejectCancelsPendingIntent(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)

	o, err := f.svc.UpdateStatus(context.Background(), brandAdmin, res.Order.ID, StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, o.Status)
	assert.Equal(t, []string{res.Intent.ID}, f.gateway.canceled)
	assert.Equal(t, 5, f.catalog.quantity("P"))
}

func TestUpdateStatus_RejectCapturedIntent(t *testing.T) {
	f := newFixture(t, newTestProduct("P", "10.00", 5))
	res := f.placeCard(t, "P", 2)
	f.gateway.settle(res.Intent.ID, payment.StatusSucceeded, "")

	_, err := f.svc.UpdateStatus(context.Background(), brandAdmin, res.Order.ID, StatusRejected)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "captured")

	stored := f.orders.stored(t, res.Order.ID)
	assert.Equal(t, StatusPending, stored.Status)
	assert.True(t, stored.StockReserved)
	assert.Equal(t, 3, f.catalog.quantity("P"))

	f.gateway.cancelErr = errors.New("connection reset")
	_, err = f.svc.UpdateStatus(context.Background(), brandAdmin, res.Order.ID, StatusRejected)
	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)
}

func TestUpdateStatus_CollectSettlesInPersonPayment(t *testing.T) {
	f := newFixture(t)
	f.seed(Order{ID: "o1", UserID: "u1", PaymentMethod: PaymentInPerson, PaymentStatus: PaymentPending, Status: StatusConfirmed, StockReserved: true})

	o, err := f.svc.UpdateStatus(context.Background(), superAdmin, "o1", StatusCollected)
	require.NoError(t, err)
	assert.Equal(t, PaymentCompleted, o.PaymentStatus)
	assert.Empty(t, o.PaymentID)
	assert.False(t, o.StockReserved)
	assert.Zero(t, f.catalog.releases)
}

func TestUpdateStatus_Access(t *testing.T) {
	f := newFixture(t)
	f.seed(Order{
		ID:            "o1",
		UserID:        "u1",
		Items:         []LineItem{{ProductID: "P", Brand: "monoprix", Quantity: 1}},
		PaymentMethod: PaymentInPerson,
		PaymentStatus: PaymentPending,
		Status:        StatusPending,
	})

	tests := []struct {
		name   string
		caller auth.Caller
		ok     bool
	}{
		{name: "owner shopper", caller: shopper},
		{name: "admin of another brand", caller: otherAdmin},
		{name: "admin without brand", caller: noBrandAdm},
		{name: "admin of the brand", caller: brandAdmin, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.UpdateStatus(context.Background(), tt.caller, "o1", StatusConfirmed)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			var fErr *ForbiddenError
			require.ErrorAs(t, err, &fErr)
			assert.Equal(t, StatusPending, f.orders.stored(t, "o1").Status)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UpdateStatus(context.Background(), superAdmin, "missing", StatusConfirmed)

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "missing", nfErr.ID)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "collected", "rejected", " Confirmed "} {
		_, err := ParseStatus(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"processing", "shipped", "delivered", "cancelled", ""} {
		_, err := ParseStatus(s)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, s)
	}
}

// --- Queries ---

func TestList(t *testing.T) {
	f := newFixture(t)
	f.seed(Order{ID: "o1", UserID: "u1", Items: []LineItem{{Brand: "monoprix"}}})
	f.seed(Order{ID: "o2", UserID: "u1", Items: []LineItem{{Brand: "carrefour"}}})
	f.seed(Order{ID: "o3", UserID: "u2", Items: []LineItem{{Brand: "monoprix"}}})

	ids := func(orders []Order) []string {
		out := make([]string, len(orders))
		for i, o := range orders {
			out[i] = o.ID
		}
		return out
	}

	t.Run("shopper sees own orders", func(t *testing.T) {
		got, err := f.svc.List(context.Background(), shopper, "")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"o1", "o2"}, ids(got))
	})
	t.Run("shopper cannot list another user", func(t *testing.T) {
		_, err := f.svc.List(context.Background(), shopper, "u2")
		var fErr *ForbiddenError
		require.ErrorAs(t, err, &fErr)
	})
	t.Run("superadmin sees all", func(t *testing.T) {
		got, err := f.svc.List(context.Background(), superAdmin, "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
	t.Run("brand admin sees brand orders", func(t *testing.T) {
		got, err := f.svc.List(context.Background(), brandAdmin, "")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"o1", "o3"}, ids(got))
	})
	t.Run("brand admin filters a user's orders", func(t *testing.T) {
		got, err := f.svc.List(context.Background(), brandAdmin, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"o1"}, ids(got))
	})
	t.Run("admin without brand", func(t *testing.T) {
		_, err := f.svc.List(context.Background(), noBrandAdm, "")
		var fErr *ForbiddenError
		require.ErrorAs(t, err, &fErr)
	})
}

func TestInvoice(t *testing.T) {
	f := newFixture(t)
	f.seed(Order{ID: "o-pending", UserID: "u1", Status: StatusPending})
	f.seed(Order{ID: "o-confirmed", UserID: "u1", Status: StatusConfirmed, Version: 2})

	t.Run("confirmed renders", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.svc.Invoice(context.Background(), shopper, "o-confirmed", &buf))
		assert.Equal(t, "invoice o-confirmed", buf.String())
		assert.Equal(t, 2, f.orders.stored(t, "o-confirmed").Version)
	})
	t.Run("pending is a conflict", func(t *testing.T) {
		err := f.svc.Invoice(context.Background(), shopper, "o-pending", io.Discard)
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
	})
	t.Run("unknown order", func(t *testing.T) {
		err := f.svc.Invoice(context.Background(), superAdmin, "missing", io.Discard)
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})
	assert.Equal(t, []string{"o-confirmed"}, f.renderer.rendered)
}
