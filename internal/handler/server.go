package handler

import (
	"github.com/go-faster/errors"

	"github.com/sustainafood/grocery-orders/gen/oas"
)

// NewServer builds the generated API server under /api with the JSON error
// responses of this package. opts are applied last.
func NewServer(h *Handler, sec *SecurityHandler, opts ...oas.ServerOption) (*oas.Server, error) {
	base := []oas.ServerOption{
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(ErrorHandler),
		oas.WithNotFound(NotFound),
		oas.WithMethodNotAllowed(MethodNotAllowed),
	}
	s, err := oas.NewServer(h, sec, append(base, opts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "create oas server")
	}
	return s, nil
}
