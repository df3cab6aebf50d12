package handler

import (
	"bytes"
	"context"

	"github.com/sustainafood/grocery-orders/gen/oas"
	"github.com/sustainafood/grocery-orders/internal/domain/order"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
	"github.com/sustainafood/grocery-orders/internal/invoice"
)

// CreateOrder places an order. Card orders also return the payment session
// the client confirms against the provider.
func (h *Handler) CreateOrder(ctx context.Context, req *oas.CreateOrderRequest) (oas.CreateOrderRes, error) {
	items := make([]order.CartItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = order.CartItem{ProductID: it.ProductId, Quantity: it.Quantity}
	}

	res, err := h.orders.Create(ctx, caller(ctx), order.CreateRequest{
		Items:         items,
		Address:       addressFromOAS(req.AddressInfo),
		PaymentMethod: order.PaymentMethod(req.PaymentMethod.Or("")),
	})
	if err != nil {
		return respond(ctx, err, createOrderError)
	}
	return h.orderResult(res.Order, res.Intent), nil
}

// ConfirmPayment reconciles the client-reported outcome with the provider.
func (h *Handler) ConfirmPayment(ctx context.Context, req *oas.ConfirmPaymentRequest, params oas.ConfirmPaymentParams) (oas.ConfirmPaymentRes, error) {
	result := payment.StatusPending
	if r, ok := req.Result.Get(); ok {
		result = payment.Status(r)
	}

	o, err := h.orders.ConfirmPayment(ctx, caller(ctx), order.ConfirmRequest{
		OrderID:      params.OrderId,
		IntentID:     req.IntentId.Or(""),
		ClientResult: result,
		ClientError:  req.Error.Or(""),
	})
	if err != nil {
		return respond(ctx, err, confirmPaymentError)
	}
	return h.orderResult(o, nil), nil
}

// RetryPayment issues a fresh intent for an order whose payment failed.
func (h *Handler) RetryPayment(ctx context.Context, params oas.RetryPaymentParams) (oas.RetryPaymentRes, error) {
	res, err := h.orders.RetryPayment(ctx, caller(ctx), params.OrderId)
	if err != nil {
		return respond(ctx, err, retryPaymentError)
	}
	return h.orderResult(res.Order, res.Intent), nil
}

// UpdateOrderStatus applies a staff fulfillment transition.
func (h *Handler) UpdateOrderStatus(ctx context.Context, req *oas.UpdateStatusRequest, params oas.UpdateOrderStatusParams) (oas.UpdateOrderStatusRes, error) {
	next, err := order.ParseStatus(string(req.OrderStatus))
	if err != nil {
		return respond(ctx, err, updateOrderStatusError)
	}

	o, err := h.orders.UpdateStatus(ctx, caller(ctx), params.OrderId, next)
	if err != nil {
		return respond(ctx, err, updateOrderStatusError)
	}
	return h.orderResult(o, nil), nil
}

// GetOrder returns a single order.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (oas.GetOrderRes, error) {
	o, err := h.orders.Get(ctx, caller(ctx), params.OrderId)
	if err != nil {
		return respond(ctx, err, getOrderError)
	}
	out := orderToOAS(o)
	return &out, nil
}

// ListOrders returns the orders visible to the caller, optionally narrowed
// to one user.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) (oas.ListOrdersRes, error) {
	orders, err := h.orders.List(ctx, caller(ctx), params.UserId.Or(""))
	if err != nil {
		return respond(ctx, err, listOrdersError)
	}

	out := make(oas.ListOrdersOKApplicationJSON, len(orders))
	for i := range orders {
		out[i] = orderToOAS(&orders[i])
	}
	return &out, nil
}

// GetInvoice renders the order's PDF invoice. The document is rendered fully
// before the response starts so a failure still gets a proper error status.
func (h *Handler) GetInvoice(ctx context.Context, params oas.GetInvoiceParams) (oas.GetInvoiceRes, error) {
	var buf bytes.Buffer
	if err := h.orders.Invoice(ctx, caller(ctx), params.OrderId, &buf); err != nil {
		return respond(ctx, err, getInvoiceError)
	}
	return &oas.GetInvoiceOKHeaders{
		ContentDisposition: "attachment; filename=" + invoice.FileName(params.OrderId),
		Response:           oas.GetInvoiceOK{Data: &buf},
	}, nil
}

// GetPaymentConfig returns what a client needs to initialize the payment SDK.
func (h *Handler) GetPaymentConfig(context.Context) (*oas.PaymentConfig, error) {
	return &oas.PaymentConfig{
		Provider:       h.cfg.Provider,
		PublishableKey: h.cfg.PublishableKey,
		Currency:       h.cfg.Currency,
	}, nil
}

func (h *Handler) orderResult(o *order.Order, intent *payment.Intent) *oas.OrderResult {
	res := &oas.OrderResult{Order: orderToOAS(o)}
	if intent != nil {
		session := oas.PaymentSession{
			IntentId:     intent.ID,
			ClientSecret: intent.ClientSecret,
		}
		if h.cfg.PublishableKey != "" {
			session.PublishableKey = oas.NewOptString(h.cfg.PublishableKey)
		}
		res.Payment = oas.NewOptPaymentSession(session)
	}
	return res
}
