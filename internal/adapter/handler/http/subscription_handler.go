package http

import (
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/mollie-gateway/internal/gateway"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	proxy
}

func NewSubscriptionHandler(gw Invoker, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{proxy{gateway: gw, logger: logger}}
}

func subscriptionParams(c echo.Context) gateway.Params {
	return gateway.Params{CustomerID: c.Param("customerId"), ID: c.Param("id")}
}

func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	return h.forward(c, gateway.OpCreateSubscription, subscriptionParams(c))
}

func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	return h.list(c, gateway.OpListSubscriptions, subscriptionParams(c))
}

func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	return h.forward(c, gateway.OpGetSubscription, subscriptionParams(c))
}

func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	return h.forward(c, gateway.OpUpdateSubscription, subscriptionParams(c))
}

// CancelSubscription handles DELETE /customers/:customerId/subscriptions/:id
func (h *SubscriptionHandler) CancelSubscription(c echo.Context) error {
	return h.forward(c, gateway.OpCancelSubscription, subscriptionParams(c))
}
