package order

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/internal/domain/auth"
	"github.com/sustainafood/grocery-orders/internal/domain/catalog"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

// InvoiceRenderer turns a finalized order into a printable document.
type InvoiceRenderer interface {
	Render(ctx context.Context, w io.Writer, o *Order) error
}

// Option configures a Service.
type Option func(*Service)

// WithMeterProvider sets the provider used for order metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) { s.meterProvider = mp }
}

// WithTracerProvider sets the provider used for operation spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(instrumentationName) }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service owns the order and payment lifecycle. Order status and payment
// status are only ever written by ConfirmPayment, RetryPayment and UpdateStatus
// after creation.
type Service struct {
	catalog  catalog.Store
	orders   Repository
	gateway  payment.Gateway
	invoices InvoiceRenderer

	now           func() time.Time
	newID         func() string
	meterProvider metric.MeterProvider
	tracer        trace.Tracer
	metrics       *metrics
}

// NewService creates an order Service with the required collaborators.
func NewService(
	store catalog.Store,
	orders Repository,
	gateway payment.Gateway,
	invoices InvoiceRenderer,
	opts ...Option,
) (*Service, error) {
	s := &Service{
		catalog:       store,
		orders:        orders,
		gateway:       gateway,
		invoices:      invoices,
		now:           time.Now,
		newID:         func() string { return uuid.New().String() },
		meterProvider: metricnoop.NewMeterProvider(),
		tracer:        tracenoop.NewTracerProvider().Tracer(instrumentationName),
	}
	for _, o := range opts {
		o(s)
	}

	m, err := newMetrics(s.meterProvider)
	if err != nil {
		return nil, errors.Wrap(err, "create metrics")
	}
	s.metrics = m

	return s, nil
}

// CreateRequest holds the input for placing an order.
type CreateRequest struct {
	Items         []CartItem
	Address       Address
	PaymentMethod PaymentMethod
}

// CreateResult holds a placed order and, for card orders, the intent the
// client must confirm against the gateway.
type CreateResult struct {
	Order  *Order
	Intent *payment.Intent
}

// Create validates the cart, snapshots catalog data, reserves stock and
// persists the order. Card orders additionally get a payment intent.
func (s *Service) Create(ctx context.Context, caller auth.Caller, req CreateRequest) (_ *CreateResult, err error) {
	ctx, span := s.startSpan(ctx, "order.Create",
		attribute.String("payment.method", string(req.PaymentMethod)),
	)
	defer func() { endSpan(span, err) }()

	if err := validateCreate(caller, req); err != nil {
		return nil, err
	}

	items, err := s.snapshotItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	if err := s.reserve(ctx, items); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	o := &Order{
		ID:            s.newID(),
		UserID:        caller.UserID,
		Items:         items,
		Address:       req.Address,
		TotalAmount:   TotalOf(items),
		OrderDate:     now,
		UpdatedAt:     now,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: PaymentPending,
		Status:        StatusPending,
		StockReserved: true,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		s.release(ctx, items)
		return nil, errors.Wrap(err, "create order")
	}

	lg := zctx.From(ctx)
	lg.Info("Order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", o.UserID),
		zap.String("payment_method", string(o.PaymentMethod)),
		zap.Stringer("total", o.TotalAmount),
	)
	s.metrics.created.Add(ctx, 1, metric.WithAttributes(
		attribute.String("payment.method", string(o.PaymentMethod)),
	))

	if o.PaymentMethod == PaymentInPerson {
		return &CreateResult{Order: o}, nil
	}

	intent, err := s.startPayment(ctx, o)
	if err != nil {
		return nil, err
	}
	return &CreateResult{Order: o, Intent: intent}, nil
}

func validateCreate(caller auth.Caller, req CreateRequest) error {
	var fields []string
	if caller.UserID == "" {
		fields = append(fields, "userId")
	}
	if len(req.Items) == 0 {
		fields = append(fields, "cartItems")
	}
	for i, it := range req.Items {
		if it.ProductID == "" {
			fields = append(fields, fmt.Sprintf("cartItems[%d].productId", i))
		}
		if it.Quantity <= 0 {
			fields = append(fields, fmt.Sprintf("cartItems[%d].quantity", i))
		}
	}
	if strings.TrimSpace(req.Address.Address) == "" {
		fields = append(fields, "addressInfo.address")
	}
	if !req.PaymentMethod.Valid() {
		fields = append(fields, "paymentMethod")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// snapshotItems freezes catalog data for every cart line and checks the
// requested quantities against current availability. Nothing is written.
func (s *Service) snapshotItems(ctx context.Context, cart []CartItem) ([]LineItem, error) {
	ids := make([]string, 0, len(cart))
	requested := make(map[string]int, len(cart))
	for _, it := range cart {
		if _, ok := requested[it.ProductID]; !ok {
			ids = append(ids, it.ProductID)
		}
		requested[it.ProductID] += it.Quantity
	}

	products, err := s.catalog.Snapshot(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot products")
	}
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var missing []string
	for i, it := range cart {
		if _, ok := byID[it.ProductID]; !ok {
			missing = append(missing, fmt.Sprintf("cartItems[%d].productId", i))
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	var short []StockShortage
	for _, id := range ids {
		p := byID[id]
		available := p.Quantity
		if p.IsCollected {
			available = 0
		}
		if requested[id] > available {
			short = append(short, StockShortage{
				ProductID: id,
				Title:     p.Title,
				Requested: requested[id],
				Available: available,
			})
		}
	}
	if len(short) > 0 {
		return nil, &InsufficientStockError{Items: short}
	}

	items := make([]LineItem, len(cart))
	for i, it := range cart {
		p := byID[it.ProductID]
		items[i] = LineItem{
			ProductID:      p.ID,
			Title:          p.Title,
			Brand:          p.Brand,
			Quantity:       it.Quantity,
			Unit:           string(p.Unit),
			Price:          p.Price,
			StoreLocation:  p.StoreLocation,
			ExpirationDate: p.ExpirationDate,
			Image:          p.Image,
		}
	}
	return items, nil
}

// reserve decrements stock for every line through the catalog's atomic
// primitive. On any failure the lines already reserved are given back.
func (s *Service) reserve(ctx context.Context, items []LineItem) error {
	for i, it := range items {
		err := s.catalog.Reserve(ctx, it.ProductID, it.Quantity)
		if err == nil {
			continue
		}
		s.release(ctx, items[:i])

		var stockErr *catalog.InsufficientStockError
		if errors.As(err, &stockErr) {
			return s.shortageOf(ctx, it)
		}
		return errors.Wrapf(err, "reserve product %s", it.ProductID)
	}
	return nil
}

// shortageOf reports a line that lost the race for stock after the
// availability check passed.
func (s *Service) shortageOf(ctx context.Context, it LineItem) error {
	shortage := StockShortage{
		ProductID: it.ProductID,
		Title:     it.Title,
		Requested: it.Quantity,
	}
	if products, err := s.catalog.Snapshot(ctx, []string{it.ProductID}); err == nil && len(products) == 1 {
		shortage.Available = products[0].Quantity
	}
	return &InsufficientStockError{Items: []StockShortage{shortage}}
}

// release gives reserved stock back. It runs detached from request
// cancellation; failures are logged since the order state is already final.
func (s *Service) release(ctx context.Context, items []LineItem) {
	ctx = context.WithoutCancel(ctx)
	lg := zctx.From(ctx)
	for _, it := range items {
		if err := s.catalog.Release(ctx, it.ProductID, it.Quantity); err != nil {
			lg.Error("Release stock",
				zap.String("product_id", it.ProductID),
				zap.Int("quantity", it.Quantity),
				zap.Error(err),
			)
		}
	}
}

// save persists o with optimistic locking and maps a lost race to a conflict.
func (s *Service) save(ctx context.Context, o *Order, attempted string) error {
	o.UpdatedAt = s.now().UTC()
	if err := s.orders.Update(ctx, o); err != nil {
		if errors.Is(err, ErrStaleVersion) {
			return &ConflictError{
				OrderID:   o.ID,
				Current:   string(o.Status),
				Attempted: attempted,
				Reason:    "order was modified concurrently",
			}
		}
		return errors.Wrapf(err, "update order %s", o.ID)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: id}
		}
		return nil, errors.Wrapf(err, "get order %s", id)
	}
	return o, nil
}
