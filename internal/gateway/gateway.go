// Package gateway forwards customer, mandate and subscription operations
// to Mollie and folds every outcome into a mollie.Envelope.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wekeepgrowing/mollie-gateway/internal/domain/provider"
	"github.com/wekeepgrowing/mollie-gateway/pkg/errors"
	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
	"go.uber.org/zap"
)

// ProviderSource resolves the provider for one operation. It fails when
// the credential is not configured.
type ProviderSource interface {
	Mollie() (provider.Provider, error)
}

// Gateway is safe for concurrent use; it keeps no per-call state.
type Gateway struct {
	providers ProviderSource
	logger    *zap.Logger
}

func New(providers ProviderSource, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		providers: providers,
		logger:    logger,
	}
}

// Invoke runs op. It makes at most one upstream call and never returns a
// Go error: validation, configuration, upstream and transport failures
// all end up in the envelope.
func (g *Gateway) Invoke(ctx context.Context, op Operation, params Params, body []byte) mollie.Envelope[json.RawMessage] {
	s, ok := operations[op]
	if !ok {
		return g.fail(op, "Unsupported operation",
			errors.NewAppError(errors.ErrInvalidArgument, "unknown operation "+string(op), nil))
	}

	if (s.needsCustomer() && params.CustomerID == "") || (s.needsNestedID() && params.ID == "") {
		return g.fail(op, s.missingTitle(),
			errors.NewAppError(errors.ErrInvalidArgument, s.missingTitle(), nil))
	}

	if s.list {
		if err := params.validateList(); err != nil {
			return g.fail(op, s.title, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), nil))
		}
	}

	var payload []byte
	if s.withBody && len(body) > 0 {
		if !json.Valid(body) {
			return g.fail(op, s.title,
				errors.NewAppError(errors.ErrInvalidArgument, "request body must be valid JSON", nil))
		}
		payload = body
	}

	p, err := g.providers.Mollie()
	if err != nil {
		return g.fail(op, s.title, err)
	}

	resp, err := p.Do(ctx, &provider.Request{
		Method: s.method,
		Path:   s.path(params),
		Body:   payload,
	})
	if err != nil {
		return g.fail(op, s.title, classify(err))
	}

	if len(resp.Body) == 0 || resp.StatusCode == http.StatusNoContent {
		return mollie.Empty[json.RawMessage]()
	}
	if !json.Valid(resp.Body) {
		return g.fail(op, s.title,
			errors.NewAppError(errors.ErrInternal, "invalid JSON in upstream response", nil))
	}
	return mollie.OK(json.RawMessage(resp.Body))
}

// classify maps provider errors onto the gateway's error codes. A provider
// error with a status is an upstream failure; without one it is transport.
func classify(err error) error {
	var perr *provider.ProviderError
	if !errors.As(err, &perr) {
		var appErr *errors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return errors.NewAppError(errors.ErrTransport, err.Error(), err)
	}

	switch {
	case perr.Code == provider.CodeUpstreamError:
		return errors.NewStatusError(errors.ErrUpstream, perr.StatusCode, perr.Message, perr)
	case perr.Code == provider.CodeRequestError:
		return errors.NewAppError(errors.ErrInternal, perr.Error(), perr)
	default:
		return errors.NewAppError(errors.ErrTransport, perr.Error(), perr)
	}
}

// fail logs err and folds it into a failed envelope. The detail is the
// error's own message; the status falls back to 500.
func (g *Gateway) fail(op Operation, title string, err error) mollie.Envelope[json.RawMessage] {
	status := errors.StatusOf(err)
	if status == 0 {
		status = http.StatusInternalServerError
	}

	detail := err.Error()
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		detail = appErr.Message()
	}
	if detail == title {
		detail = ""
	}

	errors.LogError(g.logger, err, "Gateway operation failed",
		zap.String("operation", string(op)),
		zap.String("title", title))

	return mollie.Fail[json.RawMessage](status, title, detail)
}
