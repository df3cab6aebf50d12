package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/gen/oas"
	"github.com/sustainafood/grocery-orders/internal/domain/order"
	"github.com/sustainafood/grocery-orders/internal/domain/payment"
)

// classify maps a domain error to a status code and API error body. Errors
// it does not know are left to ErrorHandler.
func classify(ctx context.Context, err error) (int, oas.Error, bool) {
	var (
		validation *order.ValidationError
		stock      *order.InsufficientStockError
		conflict   *order.ConflictError
		notFound   *order.NotFoundError
		forbidden  *order.ForbiddenError
		setup      *order.PaymentSetupError
		gateway    *payment.GatewayError
	)

	body := oas.Error{Message: err.Error()}
	switch {
	case errors.As(err, &validation):
		body.Code = http.StatusBadRequest
		body.Fields = validation.Fields
	case errors.As(err, &stock):
		body.Code = http.StatusConflict
		body.Items = make([]oas.StockShortage, len(stock.Items))
		for i, it := range stock.Items {
			body.Items[i] = oas.StockShortage{
				ProductId: it.ProductID,
				Title:     it.Title,
				Requested: it.Requested,
				Available: it.Available,
			}
		}
	case errors.As(err, &conflict):
		body.Code = http.StatusConflict
		body.Current = oas.NewOptString(conflict.Current)
		body.Attempted = oas.NewOptString(conflict.Attempted)
	case errors.Is(err, order.ErrPaymentPending):
		body.Code = http.StatusConflict
	case errors.As(err, &notFound):
		body.Code = http.StatusNotFound
	case errors.As(err, &forbidden):
		body.Code = http.StatusForbidden
	case errors.As(err, &gateway):
		zctx.From(ctx).Warn("Payment gateway error", zap.Error(err))
		body.Code = http.StatusBadGateway
		body.Message = gateway.Error()
		if errors.As(err, &setup) {
			body.OrderId = oas.NewOptString(setup.OrderID)
		}
	default:
		return 0, oas.Error{}, false
	}
	return body.Code, body, true
}

// respond turns a known domain error into the operation's typed response.
// Unknown errors are returned as is and end up in ErrorHandler.
func respond[R any](ctx context.Context, err error, wrap func(code int, e oas.Error) R) (R, error) {
	code, body, ok := classify(ctx, err)
	if !ok {
		var zero R
		return zero, err
	}
	return wrap(code, body), nil
}

func createOrderError(code int, e oas.Error) oas.CreateOrderRes {
	switch code {
	case http.StatusBadRequest:
		v := oas.CreateOrderBadRequest(e)
		return &v
	case http.StatusForbidden:
		v := oas.CreateOrderForbidden(e)
		return &v
	case http.StatusNotFound:
		v := oas.CreateOrderNotFound(e)
		return &v
	case http.StatusConflict:
		v := oas.CreateOrderConflict(e)
		return &v
	default:
		v := oas.CreateOrderBadGateway(e)
		return &v
	}
}

func confirmPaymentError(code int, e oas.Error) oas.ConfirmPaymentRes {
	switch code {
	case http.StatusBadRequest:
		v := oas.ConfirmPaymentBadRequest(e)
		return &v
	case http.StatusForbidden:
		v := oas.ConfirmPaymentForbidden(e)
		return &v
	case http.StatusNotFound:
		v := oas.ConfirmPaymentNotFound(e)
		return &v
	case http.StatusConflict:
		v := oas.ConfirmPaymentConflict(e)
		return &v
	default:
		v := oas.ConfirmPaymentBadGateway(e)
		return &v
	}
}

func retryPaymentError(code int, e oas.Error) oas.RetryPaymentRes {
	switch code {
	case http.StatusBadRequest:
		v := oas.RetryPaymentBadRequest(e)
		return &v
	case http.StatusForbidden:
		v := oas.RetryPaymentForbidden(e)
		return &v
	case http.StatusNotFound:
		v := oas.RetryPaymentNotFound(e)
		return &v
	case http.StatusConflict:
		v := oas.RetryPaymentConflict(e)
		return &v
	default:
		v := oas.RetryPaymentBadGateway(e)
		return &v
	}
}

func updateOrderStatusError(code int, e oas.Error) oas.UpdateOrderStatusRes {
	switch code {
	case http.StatusBadRequest:
		v := oas.UpdateOrderStatusBadRequest(e)
		return &v
	case http.StatusForbidden:
		v := oas.UpdateOrderStatusForbidden(e)
		return &v
	case http.StatusNotFound:
		v := oas.UpdateOrderStatusNotFound(e)
		return &v
	case http.StatusConflict:
		v := oas.UpdateOrderStatusConflict(e)
		return &v
	default:
		v := oas.UpdateOrderStatusBadGateway(e)
		return &v
	}
}

func getOrderError(code int, e oas.Error) oas.GetOrderRes {
	switch code {
	case http.StatusBadRequest:
		v := oas.GetOrderBadRequest(e)
		return &v
	case http.StatusForbidden:
		v := oas.GetOrderForbidden(e)
		return &v
	case http.StatusNotFound:
		v := oas.GetOrderNotFound(e)
		return &v
	case http.StatusConflict:
		v := oas.GetOrderConflict(e)
		return &v
	default:
		v := oas.GetOrderBadGateway(e)
		return &v
	}
}

func listOrdersError(code int, e oas.Error) oas.ListOrdersRes {
	switch code {
	case http.StatusBadRequest:
		v := oas.ListOrdersBadRequest(e)
		return &v
	case http.StatusForbidden:
		v := oas.ListOrdersForbidden(e)
		return &v
	case http.StatusNotFound:
		v := oas.ListOrdersNotFound(e)
		return &v
	case http.StatusConflict:
		v := oas.ListOrdersConflict(e)
		return &v
	default:
		v := oas.ListOrdersBadGateway(e)
		return &v
	}
}

func getInvoiceError(code int, e oas.Error) oas.GetInvoiceRes {
	switch code {
	case http.StatusBadRequest:
		v := oas.GetInvoiceBadRequest(e)
		return &v
	case http.StatusForbidden:
		v := oas.GetInvoiceForbidden(e)
		return &v
	case http.StatusNotFound:
		v := oas.GetInvoiceNotFound(e)
		return &v
	case http.StatusConflict:
		v := oas.GetInvoiceConflict(e)
		return &v
	default:
		v := oas.GetInvoiceBadGateway(e)
		return &v
	}
}

// ErrorHandler answers requests the generated server could not hand to an
// operation (bad input, failed authentication) and operations that failed
// with an unexpected error. Unexpected errors are logged and reported as 500
// without their message.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var ogenErr ogenerrors.Error
	switch {
	case errors.As(err, &ogenErr):
		code := ogenErr.Code()
		if code == http.StatusUnauthorized {
			zctx.From(ctx).Debug("Unauthorized", zap.Error(err))
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, oas.Error{Code: code, Message: "missing or invalid bearer token"})
			return
		}
		writeError(w, oas.Error{Code: code, Message: err.Error()})
	default:
		if _, body, ok := classify(ctx, err); ok {
			writeError(w, body)
			return
		}
		zctx.From(ctx).Error("Request failed", zap.Error(err))
		writeError(w, oas.Error{Code: http.StatusInternalServerError, Message: "internal server error"})
	}
}

// NotFound answers requests for unknown routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, oas.Error{Code: http.StatusNotFound, Message: "route not found"})
}

// MethodNotAllowed answers requests for a known route with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, oas.Error{Code: http.StatusMethodNotAllowed, Message: "method not allowed"})
}

func writeError(w http.ResponseWriter, body oas.Error) {
	var e jx.Encoder
	body.Encode(&e)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Code)
	_, _ = w.Write(e.Bytes())
}
