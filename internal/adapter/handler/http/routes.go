package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Prefix is where the Mollie routes are mounted.
const Prefix = "/api/mollie"

// RegisterRoutes mounts every customer, mandate and subscription route on g.
func RegisterRoutes(g *echo.Group, gw Invoker, logger *zap.Logger) {
	customers := NewCustomerHandler(gw, logger)
	mandates := NewMandateHandler(gw, logger)
	subscriptions := NewSubscriptionHandler(gw, logger)

	g.POST("/customers", customers.CreateCustomer)
	g.GET("/customers", customers.ListCustomers)
	g.GET("/customers/:id", customers.GetCustomer)
	g.PATCH("/customers/:id", customers.UpdateCustomer)
	g.DELETE("/customers/:id", customers.DeleteCustomer)

	g.POST("/customers/:customerId/mandates", mandates.CreateMandate)
	g.GET("/customers/:customerId/mandates", mandates.ListMandates)
	g.GET("/customers/:customerId/mandates/:id", mandates.GetMandate)
	g.DELETE("/customers/:customerId/mandates/:id", mandates.RevokeMandate)

	g.POST("/customers/:customerId/subscriptions", subscriptions.CreateSubscription)
	g.GET("/customers/:customerId/subscriptions", subscriptions.ListSubscriptions)
	g.GET("/customers/:customerId/subscriptions/:id", subscriptions.GetSubscription)
	g.PATCH("/customers/:customerId/subscriptions/:id", subscriptions.UpdateSubscription)
	g.DELETE("/customers/:customerId/subscriptions/:id", subscriptions.CancelSubscription)
}
