package client

import (
	"context"
	"net/http"

	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
)

type CustomersService struct {
	c *Client
}

func (s *CustomersService) Create(ctx context.Context, req mollie.CustomerRequest) (mollie.Envelope[mollie.Customer], error) {
	return do[mollie.Customer](ctx, s.c, http.MethodPost, "/customers", req)
}

func (s *CustomersService) Get(ctx context.Context, customerID string) (mollie.Envelope[mollie.Customer], error) {
	return do[mollie.Customer](ctx, s.c, http.MethodGet, "/customers/"+escape(customerID), nil)
}

func (s *CustomersService) Update(ctx context.Context, customerID string, req mollie.CustomerRequest) (mollie.Envelope[mollie.Customer], error) {
	return do[mollie.Customer](ctx, s.c, http.MethodPatch, "/customers/"+escape(customerID), req)
}

// Delete returns a successful envelope without data.
func (s *CustomersService) Delete(ctx context.Context, customerID string) (mollie.Envelope[struct{}], error) {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/customers/"+escape(customerID), nil)
}

func (s *CustomersService) List(ctx context.Context, opts *ListOptions) (mollie.Envelope[mollie.CustomerList], error) {
	return do[mollie.CustomerList](ctx, s.c, http.MethodGet, "/customers"+opts.encode(), nil)
}
