package http

import (
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/mollie-gateway/internal/gateway"
	"go.uber.org/zap"
)

type MandateHandler struct {
	proxy
}

func NewMandateHandler(gw Invoker, logger *zap.Logger) *MandateHandler {
	return &MandateHandler{proxy{gateway: gw, logger: logger}}
}

func mandateParams(c echo.Context) gateway.Params {
	return gateway.Params{CustomerID: c.Param("customerId"), ID: c.Param("id")}
}

func (h *MandateHandler) CreateMandate(c echo.Context) error {
	return h.forward(c, gateway.OpCreateMandate, mandateParams(c))
}

func (h *MandateHandler) ListMandates(c echo.Context) error {
	return h.list(c, gateway.OpListMandates, mandateParams(c))
}

func (h *MandateHandler) GetMandate(c echo.Context) error {
	return h.forward(c, gateway.OpGetMandate, mandateParams(c))
}

// RevokeMandate handles DELETE /customers/:customerId/mandates/:id
func (h *MandateHandler) RevokeMandate(c echo.Context) error {
	return h.forward(c, gateway.OpRevokeMandate, mandateParams(c))
}
