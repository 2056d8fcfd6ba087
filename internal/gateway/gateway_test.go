package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/mollie-gateway/internal/config"
	"github.com/wekeepgrowing/mollie-gateway/internal/domain/provider"
	"github.com/wekeepgrowing/mollie-gateway/internal/gateway"
	providerFactory "github.com/wekeepgrowing/mollie-gateway/internal/infrastructure/provider"
	"github.com/wekeepgrowing/mollie-gateway/internal/mollietest"
	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
	"go.uber.org/zap"
)

func newGateway(t *testing.T, apiKey string) (*gateway.Gateway, *mollietest.Server) {
	t.Helper()
	srv := mollietest.NewServer()
	t.Cleanup(srv.Close)

	factory := providerFactory.NewFactory(config.MollieConfig{
		APIKey:  apiKey,
		BaseURL: srv.BaseURL(),
	}, "test", zap.NewNop())
	return gateway.New(factory, zap.NewNop()), srv
}

func TestInvoke_MissingCustomerIDMakesNoUpstreamCall(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	needCustomer := []gateway.Operation{
		gateway.OpGetCustomer, gateway.OpUpdateCustomer, gateway.OpDeleteCustomer,
		gateway.OpCreateMandate, gateway.OpListMandates, gateway.OpGetMandate, gateway.OpRevokeMandate,
		gateway.OpCreateSubscription, gateway.OpListSubscriptions, gateway.OpGetSubscription,
		gateway.OpUpdateSubscription, gateway.OpCancelSubscription,
	}
	for _, op := range needCustomer {
		t.Run(string(op), func(t *testing.T) {
			env := g.Invoke(context.Background(), op, gateway.Params{ID: "x_1"}, []byte(`{}`))
			assert.False(t, env.Success)
			assert.Nil(t, env.Data)
			require.NotNil(t, env.Error)
			assert.Equal(t, http.StatusBadRequest, env.Error.Status)
			assert.Contains(t, env.Error.Title, "Missing customer ID")
		})
	}
	assert.Empty(t, srv.Calls())
}

func TestInvoke_MissingNestedID(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	env := g.Invoke(context.Background(), gateway.OpGetMandate, gateway.Params{CustomerID: "cst_mock1234"}, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusBadRequest, env.Error.Status)
	assert.Equal(t, "Missing customer ID or mandate ID", env.Error.Title)
	assert.Empty(t, env.Error.Detail)

	env = g.Invoke(context.Background(), gateway.OpCancelSubscription, gateway.Params{CustomerID: "cst_mock1234"}, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Missing customer ID or subscription ID", env.Error.Title)

	assert.Empty(t, srv.Calls())
}

func TestInvoke_ListQueryString(t *testing.T) {
	g, srv := newGateway(t, "test_key")
	ctx := context.Background()

	env := g.Invoke(ctx, gateway.OpListCustomers, gateway.Params{}, nil)
	require.True(t, env.Success)
	assert.Equal(t, "/v2/customers", srv.LastCall().Path)
	assert.Empty(t, srv.LastCall().RawQuery)

	g.Invoke(ctx, gateway.OpListCustomers, gateway.Params{Limit: 10}, nil)
	assert.Equal(t, "limit=10", srv.LastCall().RawQuery)

	g.Invoke(ctx, gateway.OpListMandates, gateway.Params{CustomerID: "cst_mock1234", From: "mdt_next"}, nil)
	assert.Equal(t, "/v2/customers/cst_mock1234/mandates", srv.LastCall().Path)
	assert.Equal(t, "from=mdt_next", srv.LastCall().RawQuery)

	g.Invoke(ctx, gateway.OpListSubscriptions, gateway.Params{CustomerID: "cst_mock1234", Limit: 5, From: "sub 2"}, nil)
	assert.Equal(t, "limit=5&from=sub+2", srv.LastCall().RawQuery)
}

func TestInvoke_InvalidLimitMakesNoUpstreamCall(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	env := g.Invoke(context.Background(), gateway.OpListCustomers, gateway.Params{Limit: 1000}, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusBadRequest, env.Error.Status)
	assert.Equal(t, "Failed to list customers", env.Error.Title)
	assert.Contains(t, env.Error.Detail, "limit")
	assert.Empty(t, srv.Calls())
}

func TestInvoke_InvalidBody(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	env := g.Invoke(context.Background(), gateway.OpCreateCustomer, gateway.Params{}, []byte(`{"name":`))
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusBadRequest, env.Error.Status)
	assert.Equal(t, "Failed to create customer", env.Error.Title)
	assert.Equal(t, "request body must be valid JSON", env.Error.Detail)
	assert.Empty(t, srv.Calls())
}

func TestInvoke_CreateCustomer(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	env := gateway.Do[mollie.Customer](context.Background(), g, gateway.OpCreateCustomer, gateway.Params{},
		mollie.CustomerRequest{Name: "Test Customer", Email: "test@example.com"})

	require.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Nil(t, env.Error)
	assert.Equal(t, "Test Customer", env.Data.Name)
	assert.Equal(t, "test@example.com", env.Data.Email)
	assert.NotEmpty(t, env.Data.ID)

	call := srv.LastCall()
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/v2/customers", call.Path)
	assert.Equal(t, "Bearer test_key", call.Auth)
	assert.Equal(t, "application/json", call.ContentType)
	assert.JSONEq(t, `{"name":"Test Customer","email":"test@example.com"}`, call.Body)
}

func TestInvoke_CreateMandate(t *testing.T) {
	g, _ := newGateway(t, "test_key")

	env := gateway.Do[mollie.Mandate](context.Background(), g, gateway.OpCreateMandate,
		gateway.Params{CustomerID: "cst_mock1234"},
		mollie.MandateRequest{Method: mollie.MethodCreditCard})

	require.True(t, env.Success)
	assert.Equal(t, "cst_mock1234", env.Value().CustomerID)
	assert.Equal(t, "creditcard", env.Value().Method)
}

func TestInvoke_CreateSubscription(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	body := []byte(`{"amount":{"value":"25.00","currency":"EUR"},"interval":"1 month","description":"Test subscription"}`)
	env := g.Invoke(context.Background(), gateway.OpCreateSubscription, gateway.Params{CustomerID: "cst_mock1234"}, body)
	require.True(t, env.Success)

	typed := gateway.Decode[mollie.Subscription](gateway.OpCreateSubscription, env)
	require.True(t, typed.Success)
	sub := typed.Value()
	assert.Equal(t, mollie.Amount{Currency: "EUR", Value: "25.00"}, sub.Amount)
	assert.Equal(t, "1 month", sub.Interval)
	assert.Equal(t, "Test subscription", sub.Description)
	assert.Equal(t, "cst_mock1234", sub.CustomerID)
	assert.Equal(t, "/v2/customers/cst_mock1234/subscriptions", srv.LastCall().Path)
}

func TestInvoke_DeleteReturnsEmptySuccess(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	env := g.Invoke(context.Background(), gateway.OpCancelSubscription,
		gateway.Params{CustomerID: "cst_mock1234", ID: "sub_mock1234"}, nil)
	assert.True(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Nil(t, env.Error)

	call := srv.LastCall()
	assert.Equal(t, http.MethodDelete, call.Method)
	assert.Equal(t, "/v2/customers/cst_mock1234/subscriptions/sub_mock1234", call.Path)
	assert.Empty(t, call.Body)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(raw))
}

func TestInvoke_UpstreamErrorKeepsStatus(t *testing.T) {
	g, srv := newGateway(t, "test_key")
	srv.FailWith(&mollietest.Failure{Status: http.StatusNotFound, Title: "Not Found", Detail: "No customer exists with token cst_nope."})

	env := g.Invoke(context.Background(), gateway.OpGetCustomer, gateway.Params{CustomerID: "cst_nope"}, nil)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusNotFound, env.Error.Status)
	assert.Equal(t, "Failed to get customer", env.Error.Title)
	assert.Equal(t, "No customer exists with token cst_nope.", env.Error.Detail)

	srv.FailWith(&mollietest.Failure{Status: http.StatusUnprocessableEntity, Title: "Unprocessable Entity"})
	env = g.Invoke(context.Background(), gateway.OpCreateSubscription, gateway.Params{CustomerID: "cst_1"}, []byte(`{}`))
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusUnprocessableEntity, env.Error.Status)
	assert.NotEmpty(t, env.Error.Title)
	assert.Len(t, srv.Calls(), 2)
}

func TestInvoke_MissingAPIKey(t *testing.T) {
	g, srv := newGateway(t, "")

	env := g.Invoke(context.Background(), gateway.OpListCustomers, gateway.Params{}, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusInternalServerError, env.Error.Status)
	assert.Equal(t, "Failed to list customers", env.Error.Title)
	assert.Equal(t, "Mollie API key is not configured", env.Error.Detail)
	assert.Empty(t, srv.Calls())
}

func TestInvoke_UnknownOperation(t *testing.T) {
	g, srv := newGateway(t, "test_key")

	env := g.Invoke(context.Background(), gateway.Operation("payments.create"), gateway.Params{}, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusBadRequest, env.Error.Status)
	assert.Equal(t, "Unsupported operation", env.Error.Title)
	assert.Empty(t, srv.Calls())
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Do(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*provider.Response)
	return resp, args.Error(1)
}

func (m *MockProvider) GetProviderName() string { return "mock" }

type staticSource struct {
	p provider.Provider
}

func (s staticSource) Mollie() (provider.Provider, error) { return s.p, nil }

func TestInvoke_TransportError(t *testing.T) {
	p := new(MockProvider)
	p.On("Do", mock.Anything, mock.MatchedBy(func(r *provider.Request) bool {
		return r.Method == http.MethodGet && r.Path == "/customers/cst_1"
	})).Return(nil, &provider.ProviderError{
		Code:    provider.CodeAPIError,
		Message: "Mollie API request failed",
		Details: "dial tcp: connection refused",
	}).Once()

	g := gateway.New(staticSource{p: p}, zap.NewNop())
	env := g.Invoke(context.Background(), gateway.OpGetCustomer, gateway.Params{CustomerID: "cst_1"}, nil)

	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusInternalServerError, env.Error.Status)
	assert.Equal(t, "Failed to get customer", env.Error.Title)
	assert.Contains(t, env.Error.Detail, "connection refused")
	p.AssertExpectations(t)
}

func TestInvoke_PlainErrorDefaultsTo500(t *testing.T) {
	p := new(MockProvider)
	p.On("Do", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	g := gateway.New(staticSource{p: p}, nil)
	env := g.Invoke(context.Background(), gateway.OpListCustomers, gateway.Params{}, nil)

	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusInternalServerError, env.Error.Status)
	assert.Equal(t, "boom", env.Error.Detail)
}

func TestInvoke_NonJSONSuccessBody(t *testing.T) {
	p := new(MockProvider)
	p.On("Do", mock.Anything, mock.Anything).
		Return(&provider.Response{StatusCode: http.StatusOK, Body: []byte("<html>")}, nil).Once()

	g := gateway.New(staticSource{p: p}, zap.NewNop())
	env := g.Invoke(context.Background(), gateway.OpGetCustomer, gateway.Params{CustomerID: "cst_1"}, nil)

	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusInternalServerError, env.Error.Status)
	assert.Equal(t, "invalid JSON in upstream response", env.Error.Detail)
}

func TestInvoke_BodyNotForwardedForReads(t *testing.T) {
	p := new(MockProvider)
	p.On("Do", mock.Anything, mock.MatchedBy(func(r *provider.Request) bool {
		return r.Body == nil
	})).Return(&provider.Response{StatusCode: http.StatusOK, Body: []byte(`{"id":"cst_1"}`)}, nil).Once()

	g := gateway.New(staticSource{p: p}, zap.NewNop())
	env := g.Invoke(context.Background(), gateway.OpGetCustomer, gateway.Params{CustomerID: "cst_1"}, []byte(`{"ignored":true}`))

	assert.True(t, env.Success)
	p.AssertExpectations(t)
}

func TestDecode_Mismatch(t *testing.T) {
	raw := json.RawMessage(`{"amount":"not an object"}`)
	env := gateway.Decode[mollie.Subscription](gateway.OpGetSubscription, mollie.OK(raw))

	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusInternalServerError, env.Error.Status)
	assert.Equal(t, "Failed to get subscription", env.Error.Title)
}
