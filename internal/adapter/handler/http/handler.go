package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/mollie-gateway/internal/gateway"
	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
	"go.uber.org/zap"
)

// Invoker runs gateway operations.
type Invoker interface {
	Invoke(ctx context.Context, op gateway.Operation, params gateway.Params, body []byte) mollie.Envelope[json.RawMessage]
}

// proxy binds one route to one gateway operation.
type proxy struct {
	gateway Invoker
	logger  *zap.Logger
}

// forward extracts the body, calls the gateway and writes the envelope.
// Successful envelopes are served with 200, failures with error.status.
func (p *proxy) forward(c echo.Context, op gateway.Operation, params gateway.Params) error {
	var body []byte
	if c.Request().Body != nil && c.Request().ContentLength != 0 {
		b, err := io.ReadAll(c.Request().Body)
		if err != nil {
			p.logger.Warn("Failed to read request body",
				zap.String("operation", string(op)),
				zap.Error(err))
			return writeEnvelope(c, mollie.Fail[json.RawMessage](http.StatusBadRequest, op.Title(), "request body could not be read"))
		}
		body = b
	}

	env := p.gateway.Invoke(c.Request().Context(), op, params, body)
	return writeEnvelope(c, env)
}

// list parses limit and from before forwarding.
func (p *proxy) list(c echo.Context, op gateway.Operation, params gateway.Params) error {
	limit, err := gateway.ParseLimit(c.QueryParam("limit"))
	if err != nil {
		return writeEnvelope(c, mollie.Fail[json.RawMessage](http.StatusBadRequest, op.Title(), err.Error()))
	}
	params.Limit = limit
	params.From = c.QueryParam("from")
	return p.forward(c, op, params)
}

func writeEnvelope(c echo.Context, env mollie.Envelope[json.RawMessage]) error {
	return c.JSON(env.Status(), env)
}
