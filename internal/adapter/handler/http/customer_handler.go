package http

import (
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/mollie-gateway/internal/gateway"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	proxy
}

func NewCustomerHandler(gw Invoker, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{proxy{gateway: gw, logger: logger}}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	return h.forward(c, gateway.OpCreateCustomer, gateway.Params{})
}

// ListCustomers handles GET /customers?limit=&from=
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	return h.list(c, gateway.OpListCustomers, gateway.Params{})
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	return h.forward(c, gateway.OpGetCustomer, gateway.Params{CustomerID: c.Param("id")})
}

// UpdateCustomer handles PATCH /customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	return h.forward(c, gateway.OpUpdateCustomer, gateway.Params{CustomerID: c.Param("id")})
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	return h.forward(c, gateway.OpDeleteCustomer, gateway.Params{CustomerID: c.Param("id")})
}
