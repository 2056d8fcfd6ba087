package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/mollie-gateway/internal/config"
	"github.com/wekeepgrowing/mollie-gateway/internal/gateway"
	httpServer "github.com/wekeepgrowing/mollie-gateway/internal/infrastructure/http"
	"github.com/wekeepgrowing/mollie-gateway/internal/infrastructure/provider"
	"github.com/wekeepgrowing/mollie-gateway/internal/mollietest"
	"github.com/wekeepgrowing/mollie-gateway/pkg/client"
	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
	"go.uber.org/zap"
)

// startGateway runs the full gateway in front of a fake Mollie.
func startGateway(t *testing.T, apiKey string) (*client.Client, *mollietest.Server) {
	t.Helper()
	fake := mollietest.NewServer()
	t.Cleanup(fake.Close)

	cfg := &config.Config{
		Service: config.ServiceConfig{Name: "mollie-gateway", Version: "test"},
		Server:  config.ServerConfig{Port: 8080, AllowOrigins: []string{"*"}},
		Mollie:  config.MollieConfig{APIKey: apiKey, BaseURL: fake.BaseURL(), Timeout: 5 * time.Second},
	}
	factory := provider.NewFactory(cfg.Mollie, cfg.Service.Version, zap.NewNop())
	srv := httpServer.NewServer(cfg, zap.NewNop(), gateway.New(factory, zap.NewNop()))

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return client.New(ts.URL, client.WithTimeout(5*time.Second)), fake
}

func TestCustomers(t *testing.T) {
	c, fake := startGateway(t, "test_key")
	ctx := context.Background()

	created, err := c.Customers.Create(ctx, mollie.CustomerRequest{Name: "Test Customer", Email: "test@example.com"})
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.Equal(t, "Test Customer", created.Value().Name)
	assert.Equal(t, "test@example.com", created.Value().Email)

	got, err := c.Customers.Get(ctx, "cst_mock1234")
	require.NoError(t, err)
	assert.Equal(t, "cst_mock1234", got.Value().ID)

	updated, err := c.Customers.Update(ctx, "cst_mock1234", mollie.CustomerRequest{Locale: "nl_NL"})
	require.NoError(t, err)
	assert.Equal(t, "nl_NL", updated.Value().Locale)
	assert.Equal(t, http.MethodPatch, fake.LastCall().Method)

	list, err := c.Customers.List(ctx, &client.ListOptions{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Value().Count)
	assert.Equal(t, "limit=5", fake.LastCall().RawQuery)

	deleted, err := c.Customers.Delete(ctx, "cst_mock1234")
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	assert.Nil(t, deleted.Data)
}

func TestMandates(t *testing.T) {
	c, fake := startGateway(t, "test_key")
	ctx := context.Background()

	created, err := c.Mandates.Create(ctx, "cst_mock1234", mollie.MandateRequest{Method: mollie.MethodCreditCard})
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.Equal(t, "cst_mock1234", created.Value().CustomerID)
	assert.Equal(t, "creditcard", created.Value().Method)

	got, err := c.Mandates.Get(ctx, "cst_mock1234", "mdt_abc")
	require.NoError(t, err)
	assert.Equal(t, "mdt_abc", got.Value().ID)

	list, err := c.Mandates.List(ctx, "cst_mock1234", nil)
	require.NoError(t, err)
	assert.Len(t, list.Value().Embedded.Mandates, 1)
	assert.Empty(t, fake.LastCall().RawQuery)

	revoked, err := c.Mandates.Revoke(ctx, "cst_mock1234", "mdt_abc")
	require.NoError(t, err)
	assert.True(t, revoked.Success)
	assert.Equal(t, "/v2/customers/cst_mock1234/mandates/mdt_abc", fake.LastCall().Path)
}

func TestSubscriptions(t *testing.T) {
	c, fake := startGateway(t, "test_key")
	ctx := context.Background()

	amount := mollie.NewAmount("EUR", decimal.NewFromInt(25))
	created, err := c.Subscriptions.Create(ctx, "cst_mock1234", mollie.SubscriptionRequest{
		Amount:      &amount,
		Interval:    "1 month",
		Description: "Test subscription",
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.Equal(t, mollie.Amount{Currency: "EUR", Value: "25.00"}, created.Value().Amount)
	assert.Equal(t, "1 month", created.Value().Interval)
	assert.Equal(t, "Test subscription", created.Value().Description)

	updated, err := c.Subscriptions.Update(ctx, "cst_mock1234", "sub_mock1234", mollie.SubscriptionRequest{Description: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Value().Description)

	list, err := c.Subscriptions.List(ctx, "cst_mock1234", &client.ListOptions{From: "sub_next", Limit: 1})
	require.NoError(t, err)
	assert.True(t, list.Success)
	assert.Equal(t, "limit=1&from=sub_next", fake.LastCall().RawQuery)

	canceled, err := c.Subscriptions.Cancel(ctx, "cst_mock1234", "sub_mock1234")
	require.NoError(t, err)
	assert.True(t, canceled.Success)
}

func TestFailuresComeBackAsEnvelopes(t *testing.T) {
	c, fake := startGateway(t, "test_key")
	ctx := context.Background()

	fake.FailWith(&mollietest.Failure{Status: http.StatusNotFound, Title: "Not Found", Detail: "No customer exists with token cst_nope."})
	env, err := c.Customers.Get(ctx, "cst_nope")
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusNotFound, env.Error.Status)
	assert.Equal(t, "Failed to get customer", env.Error.Title)
	assert.Error(t, env.Err())
}

func TestMissingAPIKey(t *testing.T) {
	c, fake := startGateway(t, "")

	env, err := c.Customers.List(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusInternalServerError, env.Error.Status)
	assert.Equal(t, "Mollie API key is not configured", env.Error.Detail)
	assert.Empty(t, fake.Calls())
}

func TestUnreachableGateway(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := client.New(url)
	_, err := c.Customers.Get(context.Background(), "cst_1")
	assert.Error(t, err)
}

func TestNonEnvelopeErrorResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	env, err := client.New(ts.URL).Customers.Get(context.Background(), "cst_1")
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusBadGateway, env.Error.Status)
	assert.Equal(t, "bad gateway", env.Error.Detail)
}
