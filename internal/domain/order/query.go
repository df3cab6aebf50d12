package order

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sustainafood/grocery-orders/internal/domain/auth"
)

// Get returns the order with its frozen line items and address.
func (s *Service) Get(ctx context.Context, caller auth.Caller, id string) (*Order, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeView(caller, o); err != nil {
		return nil, err
	}
	return o, nil
}

// List returns the orders of userID, or every order visible to a staff
// caller when userID is empty. Shoppers only ever see their own orders.
func (s *Service) List(ctx context.Context, caller auth.Caller, userID string) ([]Order, error) {
	if userID == "" && !caller.IsStaff() {
		userID = caller.UserID
	}

	if userID != "" {
		if userID != caller.UserID && !caller.IsStaff() {
			return nil, &ForbiddenError{Reason: "cannot list orders of another user"}
		}
		orders, err := s.orders.ListByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrapf(err, "list orders of user %s", userID)
		}
		if userID == caller.UserID || caller.Role == auth.RoleSuperAdmin {
			return orders, nil
		}
		if !caller.HasBrand() {
			return nil, errNoBrand
		}
		return filterBrand(orders, caller.Brand), nil
	}

	brand := ""
	if caller.Role == auth.RoleAdmin {
		if !caller.HasBrand() {
			return nil, errNoBrand
		}
		brand = caller.Brand
	}
	orders, err := s.orders.List(ctx, brand)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

// Invoice renders the invoice of a confirmed or terminal order into w.
// It never changes the order.
func (s *Service) Invoice(ctx context.Context, caller auth.Caller, id string, w io.Writer) (err error) {
	ctx, span := s.startSpan(ctx, "order.Invoice", attribute.String("order.id", id))
	defer func() { endSpan(span, err) }()

	o, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if o.Status == StatusPending {
		return &ConflictError{
			OrderID:   o.ID,
			Current:   string(o.Status),
			Attempted: "invoiced",
			Reason:    "only confirmed, collected or rejected orders have an invoice",
		}
	}
	if err := s.invoices.Render(ctx, w, o); err != nil {
		return errors.Wrapf(err, "render invoice %s", o.ID)
	}
	return nil
}

var errNoBrand = &ForbiddenError{Reason: "a brand must be assigned to manage orders"}

// authorizeView allows the owner and any staff member entitled to the order.
func authorizeView(caller auth.Caller, o *Order) error {
	if caller.UserID != "" && o.UserID == caller.UserID {
		return nil
	}
	return authorizeStaff(caller, o)
}

// authorizeStaff allows superadmins everywhere and admins only on orders
// that contain products of their brand.
func authorizeStaff(caller auth.Caller, o *Order) error {
	switch caller.Role {
	case auth.RoleSuperAdmin:
		return nil
	case auth.RoleAdmin:
		if !caller.HasBrand() {
			return errNoBrand
		}
		if !o.ContainsBrand(caller.Brand) {
			return &ForbiddenError{Reason: "order contains no products of your brand"}
		}
		return nil
	default:
		return &ForbiddenError{Reason: "not allowed to access this order"}
	}
}

func filterBrand(orders []Order, brand string) []Order {
	out := orders[:0]
	for i := range orders {
		if orders[i].ContainsBrand(brand) {
			out = append(out, orders[i])
		}
	}
	return out
}
