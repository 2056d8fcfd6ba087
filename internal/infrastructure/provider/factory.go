package provider

import (
	"net/http"
	"strings"

	"github.com/wekeepgrowing/mollie-gateway/internal/config"
	"github.com/wekeepgrowing/mollie-gateway/internal/domain/provider"
	mollieProvider "github.com/wekeepgrowing/mollie-gateway/internal/infrastructure/provider/mollie"
	"github.com/wekeepgrowing/mollie-gateway/pkg/errors"
	"go.uber.org/zap"
)

// ErrAPIKeyMissing is returned when no Mollie API key is configured.
var ErrAPIKeyMissing = errors.NewAppError(errors.ErrConfiguration, "Mollie API key is not configured", nil)

// Factory creates payment providers from configuration. The credential is
// checked on every call so a missing key fails the operation, not startup.
type Factory struct {
	config     config.MollieConfig
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFactory creates a new provider factory
func NewFactory(cfg config.MollieConfig, version string, logger *zap.Logger) *Factory {
	return &Factory{
		config:     cfg,
		userAgent:  "mollie-gateway/" + version,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Mollie returns the Mollie provider or ErrAPIKeyMissing.
func (f *Factory) Mollie() (provider.Provider, error) {
	if strings.TrimSpace(f.config.APIKey) == "" {
		return nil, ErrAPIKeyMissing
	}

	return mollieProvider.NewMollieProvider(
		f.config.APIKey,
		f.logger,
		mollieProvider.WithBaseURL(f.config.BaseURL),
		mollieProvider.WithHTTPClient(f.httpClient),
		mollieProvider.WithUserAgent(f.userAgent),
	), nil
}
