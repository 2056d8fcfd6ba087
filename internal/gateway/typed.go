package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
)

// Do is the typed form of Invoke: body is marshalled to JSON (nil sends no
// body) and the response data is decoded into T.
func Do[T any](ctx context.Context, g *Gateway, op Operation, params Params, body any) mollie.Envelope[T] {
	var raw []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return mollie.Fail[T](http.StatusBadRequest, op.Title(), "request body could not be encoded: "+err.Error())
		}
		raw = b
	}

	return Decode[T](op, g.Invoke(ctx, op, params, raw))
}

// Decode converts a raw envelope into a typed one.
func Decode[T any](op Operation, env mollie.Envelope[json.RawMessage]) mollie.Envelope[T] {
	if !env.Success {
		return mollie.Envelope[T]{Success: false, Error: env.Error}
	}
	if env.Data == nil {
		return mollie.Empty[T]()
	}

	var data T
	if err := json.Unmarshal(*env.Data, &data); err != nil {
		return mollie.Fail[T](http.StatusInternalServerError, op.Title(), "unexpected upstream response: "+err.Error())
	}
	return mollie.OK(data)
}
