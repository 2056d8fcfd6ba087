// Package mollietest runs an in-memory stand-in for the Mollie API.
package mollietest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Call is one request received by the fake.
type Call struct {
	Method      string
	Path        string
	RawQuery    string
	Auth        string
	ContentType string
	Body        string
}

// Failure makes the fake answer with a Mollie error document.
type Failure struct {
	Status int
	Title  string
	Detail string
}

// Server is a fake Mollie v2 API mounted under /v2.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []Call
	failure *Failure
}

// NewServer starts the fake. Close it when done.
func NewServer() *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// BaseURL is the API root to configure the gateway with.
func (s *Server) BaseURL() string {
	return s.URL + "/v2"
}

// FailWith makes every following request fail. nil restores success.
func (s *Server) FailWith(f *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = f
}

// Calls returns a copy of the recorded requests.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// LastCall returns the most recent request, or an empty Call.
func (s *Server) LastCall() Call {
	calls := s.Calls()
	if len(calls) == 0 {
		return Call{}
	}
	return calls[len(calls)-1]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:      r.Method,
		Path:        r.URL.Path,
		RawQuery:    r.URL.RawQuery,
		Auth:        r.Header.Get("Authorization"),
		ContentType: r.Header.Get("Content-Type"),
		Body:        string(body),
	})
	failure := s.failure
	s.mu.Unlock()

	if failure != nil {
		writeJSON(w, failure.Status, map[string]interface{}{
			"status": failure.Status,
			"title":  failure.Title,
			"detail": failure.Detail,
		})
		return
	}

	segments := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/v2"), "/"), "/")
	if len(segments) == 0 || segments[0] != "customers" {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"status": 404, "title": "Not Found", "detail": "Unknown path"})
		return
	}

	var input map[string]interface{}
	_ = json.Unmarshal(body, &input)

	switch {
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	case len(segments) == 1 && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, list("customers", customer("cst_mock1234", nil)))
	case len(segments) == 1:
		writeJSON(w, http.StatusCreated, customer("cst_mock1234", input))
	case len(segments) == 2:
		writeJSON(w, http.StatusOK, customer(segments[1], input))
	case len(segments) == 3 && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, list(segments[2], nested(segments[2], segments[1], "", nil)))
	case len(segments) == 3:
		writeJSON(w, http.StatusCreated, nested(segments[2], segments[1], "", input))
	default:
		writeJSON(w, http.StatusOK, nested(segments[2], segments[1], segments[3], input))
	}
}

func customer(id string, input map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{
		"resource":  "customer",
		"id":        id,
		"mode":      "test",
		"name":      "Test Customer",
		"email":     "test@example.com",
		"createdAt": "2024-01-01T00:00:00+00:00",
	}
	for k, v := range input {
		out[k] = v
	}
	return out
}

func nested(collection, customerID, id string, input map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{
		"mode":       "test",
		"customerId": customerID,
		"createdAt":  "2024-01-01T00:00:00+00:00",
	}
	switch collection {
	case "mandates":
		out["resource"] = "mandate"
		out["id"] = "mdt_mock1234"
		out["status"] = "valid"
		out["method"] = "directdebit"
	default:
		out["resource"] = "subscription"
		out["id"] = "sub_mock1234"
		out["status"] = "active"
		out["amount"] = map[string]interface{}{"currency": "EUR", "value": "25.00"}
		out["interval"] = "1 month"
		out["description"] = "Test subscription"
	}
	if id != "" {
		out["id"] = id
	}
	for k, v := range input {
		out[k] = v
	}
	return out
}

func list(collection string, item map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"count":     1,
		"_embedded": map[string]interface{}{collection: []interface{}{item}},
		"_links": map[string]interface{}{
			"self": map[string]interface{}{"href": "https://api.mollie.com/v2/" + collection, "type": "application/hal+json"},
			"next": nil,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/hal+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
