package handler

import (
	"github.com/sustainafood/grocery-orders/gen/oas"
	"github.com/sustainafood/grocery-orders/internal/domain/order"
)

func addressFromOAS(opt oas.OptAddress) order.Address {
	a, _ := opt.Get()
	return order.Address{
		Address: a.Address.Or(""),
		City:    a.City.Or(""),
		Pincode: a.Pincode.Or(""),
		Phone:   a.Phone.Or(""),
		Notes:   a.Notes.Or(""),
	}
}

func addressToOAS(a order.Address) oas.Address {
	out := oas.Address{
		Address: oas.NewOptString(a.Address),
		City:    oas.NewOptString(a.City),
		Pincode: oas.NewOptString(a.Pincode),
		Phone:   oas.NewOptString(a.Phone),
	}
	if a.Notes != "" {
		out.Notes = oas.NewOptNilString(a.Notes)
	}
	return out
}

// orderToOAS converts an order for the wire. Money goes out as a JSON
// number rounded to cents.
func orderToOAS(o *order.Order) oas.Order {
	items := make([]oas.LineItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = oas.LineItem{
			ProductId:      it.ProductID,
			Title:          it.Title,
			Brand:          it.Brand,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			Price:          it.Price.Round(2).InexactFloat64(),
			StoreLocation:  it.StoreLocation,
			ExpirationDate: it.ExpirationDate.UTC(),
			Image:          it.Image,
		}
	}

	out := oas.Order{
		ID:              o.ID,
		UserId:          o.UserID,
		CartItems:       items,
		AddressInfo:     addressToOAS(o.Address),
		OrderStatus:     oas.OrderStatus(o.Status),
		PaymentMethod:   oas.PaymentMethod(o.PaymentMethod),
		PaymentStatus:   oas.PaymentStatus(o.PaymentStatus),
		TotalAmount:     o.TotalAmount.Round(2).InexactFloat64(),
		OrderDate:       o.OrderDate.UTC(),
		OrderUpdateDate: o.UpdatedAt.UTC(),
	}
	if o.PaymentID != "" {
		out.PaymentId = oas.NewOptString(o.PaymentID)
	}
	if o.PaymentIntentID != "" {
		out.PaymentIntentId = oas.NewOptString(o.PaymentIntentID)
	}
	if o.FailureReason != "" {
		out.FailureReason = oas.NewOptString(o.FailureReason)
	}
	return out
}
