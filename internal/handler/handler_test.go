package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainafood/grocery-orders/gen/oas"
	"github.com/sustainafood/grocery-orders/internal/domain/auth"
	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
	"github.com/sustainafood/grocery-orders/internal/domain/order"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
	"github.com/sustainafood/grocery-orders/internal/gateway/sandbox"
	"github.com/sustainafood/grocery-orders/internal/invoice"
)

// --- Mock implementations ---

type memCatalog struct {
	mu       sync.Mutex
	products map[string]catalog.Product
}

func (m *memCatalog) Snapshot(_ context.Context, ids []string) ([]catalog.Product, error) {
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

func (m *memCatalog) Reserve(_ context.Context, id string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.products[id]
	if p.Quantity < qty {
		return &catalog.InsufficientStockError{ProductID: id, Requested: qty}
	}
	p.Quantity -= qty
	m.products[id] = p
	return nil
}

func (m *memCatalog) Release(_ context.Context, id string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.products[id]
	p.Quantity += qty
	m.products[id] = p
	return nil
}

func (m *memCatalog) quantity(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Quantity
}

type memOrders struct {
	mu     sync.Mutex
	orders map[string]order.Order
}

func (m *memOrders) Create(_ context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = *o
	return nil
}

func (m *memOrders) Get(_ context.Context, id string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return &o, nil
}

func (m *memOrders) Update(_ context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.orders[o.ID].Version != o.Version {
		return order.ErrStaleVersion
	}
	o.Version++
	m.orders[o.ID] = *o
	return nil
}

func (m *memOrders) ListByUser(_ context.Context, userID string) ([]order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []order.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) List(_ context.Context, brand string) ([]order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []order.Order
	for _, o := range m.orders {
		if brand == "" || o.ContainsBrand(brand) {
			out = append(out, o)
		}
	}
	return out, nil
}

type mockService struct {
	OrderService
	err     error
	created order.CreateRequest
}

func (m *mockService) Get(context.Context, auth.Caller, string) (*order.Order, error) {
	return nil, m.err
}

func (m *mockService) Create(_ context.Context, _ auth.Caller, req order.CreateRequest) (*order.CreateResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = req
	return &order.CreateResult{
		Order: &order.Order{
			ID:            "o1",
			TotalAmount:   decimal.RequireFromString("12.50"),
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: order.PaymentPending,
			Status:        order.StatusPending,
		},
		Intent: &payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"},
	}, nil
}

// --- Helpers ---

var (
	shopper = auth.Caller{UserID: "u1", Role: auth.RoleUser, Email: "u1@example.com"}
	admin   = auth.Caller{UserID: "a1", Role: auth.RoleAdmin, Brand: "Monoprix"}
)

type testAPI struct {
	srv     *httptest.Server
	sec     *SecurityHandler
	catalog *memCatalog
	gateway *sandbox.Gateway
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		sec: NewSecurityHandler([]byte("test-secret")),
		catalog: &memCatalog{products: map[string]catalog.Product{
			"p1": {
				ID:             "p1",
				Title:          "Organic yogurt",
				Brand:          "Monoprix",
				Price:          decimal.RequireFromString("10.00"),
				Unit:           catalog.UnitPiece,
				ExpirationDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
				Quantity:       5,
			},
		}},
		gateway: sandbox.New(),
	}

	svc, err := order.NewService(api.catalog, &memOrders{orders: map[string]order.Order{}}, api.gateway,
		invoice.NewRenderer("SustainaFood", ""))
	require.NoError(t, err)

	h := NewHandler(HandlerConfig{PublishableKey: "pk_test", Provider: "sandbox", Currency: "eur"}, svc)
	oasServer, err := NewServer(h, api.sec)
	require.NoError(t, err)
	api.srv = httptest.NewServer(oasServer)
	t.Cleanup(api.srv.Close)
	return api
}

func (a *testAPI) do(t *testing.T, c *auth.Caller, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, a.srv.URL+path, rd)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c != nil {
		token, err := a.sec.IssueToken(*c, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") && len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

const cardOrder = `{
	"items": [{"productId": "p1", "quantity": 2}],
	"addressInfo": {"address": "12 Rue de Marseille", "city": "Tunis", "pincode": "1000", "phone": "+21620000000", "notes": null},
	"paymentMethod": "card"
}`

// --- Tests ---

func TestAPI_CardOrderLifecycle(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, &shopper, http.MethodPost, "/api/orders", cardOrder)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	o := body["order"].(map[string]any)
	pay := body["payment"].(map[string]any)
	id := o["id"].(string)
	intentID := pay["intentId"].(string)
	assert.Equal(t, "pending", o["orderStatus"])
	assert.Equal(t, "pending", o["paymentStatus"])
	assert.Equal(t, 20.0, o["totalAmount"])
	assert.Equal(t, "pk_test", pay["publishableKey"])
	assert.NotEmpty(t, pay["clientSecret"])
	assert.Equal(t, 3, api.catalog.quantity("p1"))

	// Client claims success before the provider settled the intent.
	resp, body = api.do(t, &shopper, http.MethodPost, "/api/orders/"+id+"/payment/confirm",
		`{"intentId":"`+intentID+`","result":"succeeded"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, body)

	require.NoError(t, api.gateway.Settle(intentID, payment.StatusSucceeded, ""))
	resp, body = api.do(t, &shopper, http.MethodPost, "/api/orders/"+id+"/payment/confirm",
		`{"intentId":"`+intentID+`","result":"succeeded"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	o = body["order"].(map[string]any)
	assert.Equal(t, "confirmed", o["orderStatus"])
	assert.Equal(t, "completed", o["paymentStatus"])
	assert.Equal(t, intentID, o["paymentId"])

	resp, body = api.do(t, &admin, http.MethodPut, "/api/orders/"+id+"/status", `{"orderStatus":"collected"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	resp, body = api.do(t, &admin, http.MethodPut, "/api/orders/"+id+"/status", `{"orderStatus":"confirmed"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "collected", body["current"])
	assert.Equal(t, "confirmed", body["attempted"])

	resp, _ = api.do(t, &shopper, http.MethodGet, "/api/orders/"+id+"/invoice", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice-"+id+".pdf", resp.Header.Get("Content-Disposition"))

	assert.Equal(t, 3, api.catalog.quantity("p1"))
}

func TestAPI_FailedPaymentReleasesStock(t *testing.T) {
	api := newTestAPI(t)

	_, body := api.do(t, &shopper, http.MethodPost, "/api/orders", cardOrder)
	id := body["order"].(map[string]any)["id"].(string)
	intentID := body["payment"].(map[string]any)["intentId"].(string)
	require.NoError(t, api.gateway.Settle(intentID, payment.StatusFailed, "Your card was declined."))

	resp, body := api.do(t, &shopper, http.MethodPost, "/api/orders/"+id+"/payment/confirm",
		`{"intentId":"`+intentID+`","result":"failed","error":"card_declined"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	o := body["order"].(map[string]any)
	assert.Equal(t, "failed", o["paymentStatus"])
	assert.Equal(t, "pending", o["orderStatus"])
	assert.Equal(t, "Your card was declined.", o["failureReason"])
	assert.Equal(t, 5, api.catalog.quantity("p1"))

	resp, body = api.do(t, &shopper, http.MethodPost, "/api/orders/"+id+"/payment/retry", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.NotEqual(t, intentID, body["payment"].(map[string]any)["intentId"])
	assert.Equal(t, 3, api.catalog.quantity("p1"))
}

func TestAPI_Errors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		caller *auth.Caller
		method string
		path   string
		body   string
		want   int
		check  func(t *testing.T, body map[string]any)
	}{
		{
			name:   "no token",
			method: http.MethodGet, path: "/api/orders",
			want: http.StatusUnauthorized,
		},
		{
			name:   "malformed json",
			caller: &shopper, method: http.MethodPost, path: "/api/orders", body: `{"items":`,
			want: http.StatusBadRequest,
		},
		{
			name:   "missing fields",
			caller: &shopper, method: http.MethodPost, path: "/api/orders", body: `{"items":[]}`,
			want: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.ElementsMatch(t, []any{"cartItems", "addressInfo.address", "paymentMethod"}, body["fields"])
			},
		},
		{
			name:   "insufficient stock",
			caller: &shopper, method: http.MethodPost, path: "/api/orders",
			body: `{"items":[{"productId":"p1","quantity":9}],"addressInfo":{"address":"x"},"paymentMethod":"in-person"}`,
			want: http.StatusConflict,
			check: func(t *testing.T, body map[string]any) {
				items := body["items"].([]any)
				require.Len(t, items, 1)
				assert.Equal(t, 5.0, items[0].(map[string]any)["available"])
			},
		},
		{
			name:   "unknown order",
			caller: &shopper, method: http.MethodGet, path: "/api/orders/missing",
			want: http.StatusNotFound,
		},
		{
			name:   "unknown order invoice",
			caller: &admin, method: http.MethodGet, path: "/api/orders/missing/invoice",
			want: http.StatusNotFound,
		},
		{
			name:   "legacy status vocabulary",
			caller: &admin, method: http.MethodPut, path: "/api/orders/x/status", body: `{"orderStatus":"shipped"}`,
			want: http.StatusBadRequest,
		},
		{
			name:   "shopper cannot update status",
			caller: &shopper, method: http.MethodPut, path: "/api/orders/x/status", body: `{"orderStatus":"confirmed"}`,
			want: http.StatusForbidden,
		},
		{
			name:   "bad client result",
			caller: &shopper, method: http.MethodPost, path: "/api/orders/x/payment/confirm", body: `{"intentId":"pi","result":"maybe"}`,
			want: http.StatusBadRequest,
		},
		{
			name:   "unknown route",
			caller: &shopper, method: http.MethodGet, path: "/api/nope",
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := api.do(t, tt.caller, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode, body)
			if body != nil {
				assert.Equal(t, float64(tt.want), body["code"])
			}
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestAPI_ListAndPaymentConfig(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(t, &shopper, http.MethodPost, "/api/orders",
		`{"items":[{"productId":"p1","quantity":1}],"addressInfo":{"address":"x"},"paymentMethod":"in-person"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, api.srv.URL+"/api/orders", nil)
	require.NoError(t, err)
	token, err := api.sec.IssueToken(shopper, time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := api.srv.Client().Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()

	var orders []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "in-person", orders[0]["paymentMethod"])

	resp, body := api.do(t, &shopper, http.MethodGet, "/api/orders?userId=someone-else", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, body)

	resp, body = api.do(t, &shopper, http.MethodGet, "/api/payment/config", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pk_test", body["publishableKey"])
	assert.Equal(t, "sandbox", body["provider"])
}

func TestErrorHandler_Internal(t *testing.T) {
	sec := NewSecurityHandler([]byte("s"))
	oasServer, err := NewServer(NewHandler(HandlerConfig{}, &mockService{err: errors.New("db exploded")}), sec)
	require.NoError(t, err)
	srv := httptest.NewServer(oasServer)
	defer srv.Close()

	token, err := sec.IssueToken(shopper, time.Minute)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/api/orders/o1", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"code":500,"message":"internal server error"}`, string(raw))
}

func TestCreateOrder_StockConflict(t *testing.T) {
	h := NewHandler(HandlerConfig{}, &mockService{err: &order.InsufficientStockError{
		Items: []order.StockShortage{{ProductID: "p1", Title: "Milk", Requested: 3, Available: 1}},
	}})

	res, err := h.CreateOrder(context.Background(), &oas.CreateOrderRequest{
		Items: []oas.CartItem{{ProductId: "p1", Quantity: 3}},
	})
	require.NoError(t, err)

	conflict, ok := res.(*oas.CreateOrderConflict)
	require.True(t, ok, "got %T", res)
	assert.Equal(t, http.StatusConflict, conflict.Code)
	require.Len(t, conflict.Items, 1)
	assert.Equal(t, oas.StockShortage{ProductId: "p1", Title: "Milk", Requested: 3, Available: 1}, conflict.Items[0])
}

func TestCreateOrder_Request(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(HandlerConfig{PublishableKey: "pk_test"}, svc)

	res, err := h.CreateOrder(context.Background(), &oas.CreateOrderRequest{
		Items: []oas.CartItem{{ProductId: "p1", Quantity: 2}},
		AddressInfo: oas.NewOptAddress(oas.Address{
			Address: oas.NewOptString("12 Rue de Marseille"),
			City:    oas.NewOptString("Tunis"),
			Notes:   oas.NewOptNilString("ring twice"),
		}),
		PaymentMethod: oas.NewOptPaymentMethod(oas.PaymentMethodCard),
	})
	require.NoError(t, err)

	assert.Equal(t, order.CreateRequest{
		Items:         []order.CartItem{{ProductID: "p1", Quantity: 2}},
		Address:       order.Address{Address: "12 Rue de Marseille", City: "Tunis", Notes: "ring twice"},
		PaymentMethod: order.PaymentCard,
	}, svc.created)

	result, ok := res.(*oas.OrderResult)
	require.True(t, ok, "got %T", res)
	session, ok := result.Payment.Get()
	require.True(t, ok)
	assert.Equal(t, "pi_1", session.IntentId)
	assert.Equal(t, "pk_test", session.PublishableKey.Or(""))
	assert.Equal(t, 12.5, result.Order.TotalAmount)
}

func TestGetPaymentConfig(t *testing.T) {
	h := NewHandler(HandlerConfig{PublishableKey: "pk_live", Provider: "stripe", Currency: "eur"}, &mockService{})

	cfg, err := h.GetPaymentConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &oas.PaymentConfig{Provider: "stripe", PublishableKey: "pk_live", Currency: "eur"}, cfg)
}

func TestHandleBearerAuth(t *testing.T) {
	sec := NewSecurityHandler([]byte("secret"))
	token, err := sec.IssueToken(admin, time.Hour)
	require.NoError(t, err)

	ctx, err := sec.HandleBearerAuth(context.Background(), "GetOrder", oas.BearerAuth{Token: token})
	require.NoError(t, err)
	c, ok := CallerFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, admin, c)

	_, err = sec.HandleBearerAuth(context.Background(), "GetOrder", oas.BearerAuth{Token: "abc.def.ghi"})
	assert.Error(t, err)
}

func TestSecurityHandler_Verify(t *testing.T) {
	sec := NewSecurityHandler([]byte("secret"))
	valid, err := sec.IssueToken(admin, time.Hour)
	require.NoError(t, err)

	c, err := sec.Verify(valid)
	require.NoError(t, err)
	assert.Equal(t, admin, c)

	expired, err := sec.IssueToken(admin, -time.Minute)
	require.NoError(t, err)
	other, err := NewSecurityHandler([]byte("other")).IssueToken(admin, time.Hour)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"missing":      "",
		"expired":      expired,
		"wrong secret": other,
		"garbage":      "abc.def.ghi",
	} {
		_, err := sec.Verify(token)
		assert.Error(t, err, name)
	}
}
