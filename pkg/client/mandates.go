package client

import (
	"context"
	"net/http"

	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
)

type MandatesService struct {
	c *Client
}

func mandatesPath(customerID string) string {
	return "/customers/" + escape(customerID) + "/mandates"
}

func (s *MandatesService) Create(ctx context.Context, customerID string, req mollie.MandateRequest) (mollie.Envelope[mollie.Mandate], error) {
	return do[mollie.Mandate](ctx, s.c, http.MethodPost, mandatesPath(customerID), req)
}

func (s *MandatesService) Get(ctx context.Context, customerID, mandateID string) (mollie.Envelope[mollie.Mandate], error) {
	return do[mollie.Mandate](ctx, s.c, http.MethodGet, mandatesPath(customerID)+"/"+escape(mandateID), nil)
}

func (s *MandatesService) Revoke(ctx context.Context, customerID, mandateID string) (mollie.Envelope[struct{}], error) {
	return do[struct{}](ctx, s.c, http.MethodDelete, mandatesPath(customerID)+"/"+escape(mandateID), nil)
}

func (s *MandatesService) List(ctx context.Context, customerID string, opts *ListOptions) (mollie.Envelope[mollie.MandateList], error) {
	return do[mollie.MandateList](ctx, s.c, http.MethodGet, mandatesPath(customerID)+opts.encode(), nil)
}
