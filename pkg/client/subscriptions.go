package client

import (
	"context"
	"net/http"

	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
)

type SubscriptionsService struct {
	c *Client
}

func subscriptionsPath(customerID string) string {
	return "/customers/" + escape(customerID) + "/subscriptions"
}

func (s *SubscriptionsService) Create(ctx context.Context, customerID string, req mollie.SubscriptionRequest) (mollie.Envelope[mollie.Subscription], error) {
	return do[mollie.Subscription](ctx, s.c, http.MethodPost, subscriptionsPath(customerID), req)
}

func (s *SubscriptionsService) Get(ctx context.Context, customerID, subscriptionID string) (mollie.Envelope[mollie.Subscription], error) {
	return do[mollie.Subscription](ctx, s.c, http.MethodGet, subscriptionsPath(customerID)+"/"+escape(subscriptionID), nil)
}

func (s *SubscriptionsService) Update(ctx context.Context, customerID, subscriptionID string, req mollie.SubscriptionRequest) (mollie.Envelope[mollie.Subscription], error) {
	return do[mollie.Subscription](ctx, s.c, http.MethodPatch, subscriptionsPath(customerID)+"/"+escape(subscriptionID), req)
}

// Cancel returns a successful envelope without data.
func (s *SubscriptionsService) Cancel(ctx context.Context, customerID, subscriptionID string) (mollie.Envelope[struct{}], error) {
	return do[struct{}](ctx, s.c, http.MethodDelete, subscriptionsPath(customerID)+"/"+escape(subscriptionID), nil)
}

func (s *SubscriptionsService) List(ctx context.Context, customerID string, opts *ListOptions) (mollie.Envelope[mollie.SubscriptionList], error) {
	return do[mollie.SubscriptionList](ctx, s.c, http.MethodGet, subscriptionsPath(customerID)+opts.encode(), nil)
}
