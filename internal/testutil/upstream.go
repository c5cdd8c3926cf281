package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// Default credentials accepted by FakeAPI.
const (
	FakeEmail    = "owner@example.com"
	FakePassword = "s3cret"
	FakeName     = "Store Owner"
)

// Default payloads served by FakeAPI.
const (
	DefaultSummaryJSON      = `{"total_customers":42,"total_orders":"17","total_revenue":1234.5}`
	DefaultOrdersByDateJSON = `[{"date":"2024-01-01","orders_count":3,"revenue":"120.50"},{"date":"2024-01-02","orders_count":5,"revenue":310}]`
	DefaultTopCustomersJSON = `[{"first_name":"Asha","last_name":"Rao","email":"asha@example.com","total_spent":"900.25"},{"first_name":"Ben","last_name":"Ng","email":"ben@example.com","total_spent":450}]`
	DefaultCSV              = "first_name,last_name,email,total_spent\nAsha,Rao,asha@example.com,900.25\n"
)

// RecordedRequest is what FakeAPI saw for one inbound call.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	Body          string
}

type failure struct {
	status  int
	message string
}

// FakeAPI is an in-process stand-in for the analytics API, covering both the
// authenticated /api routes and the legacy metric routes.
type FakeAPI struct {
	Server *httptest.Server
	Token  string

	mu         sync.Mutex
	responses  map[string]string
	failures   map[string]failure
	requests   []RecordedRequest
	registered map[string]bool
}

// NewFakeAPI starts a FakeAPI and registers its shutdown with t.Cleanup.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		Token: SignedToken(t, FakeName, FakeEmail),
		responses: map[string]string{
			"/api/dashboard/summary":              DefaultSummaryJSON,
			"/api/dashboard/orders-by-date":       DefaultOrdersByDateJSON,
			"/api/dashboard/top-customers":        DefaultTopCustomersJSON,
			"/api/dashboard/export-top-customers": DefaultCSV,
			"/total-customers":                    `{"total_customers":42}`,
			"/total-orders":                       `{"total_orders":17}`,
			"/total-revenue":                      `{"total_revenue":"1234.5"}`,
			"/top-customers":                      DefaultTopCustomersJSON,
			"/orders-by-date":                     DefaultOrdersByDateJSON,
		},
		failures:   map[string]failure{},
		registered: map[string]bool{FakeEmail: true},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the base URL of the fake server.
func (f *FakeAPI) URL() string { return f.Server.URL }

// SetResponse replaces the body served for path. Setting a body for the
// login or register routes bypasses their credential handling.
func (f *FakeAPI) SetResponse(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = body
}

// Fail makes path answer with status and, if message is non-empty, a
// {"message": ...} body.
func (f *FakeAPI) Fail(path string, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = failure{status: status, message: message}
}

// Requests returns every recorded call to path, in arrival order.
func (f *FakeAPI) Requests(path string) []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []RecordedRequest
	for _, r := range f.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := string(raw)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-ID"),
		Body:          body,
	})
	fail, failed := f.failures[r.URL.Path]
	resp, known := f.responses[r.URL.Path]
	f.mu.Unlock()

	if failed {
		writeFailure(w, fail)
		return
	}

	if !known {
		switch r.URL.Path {
		case "/api/auth/login":
			f.login(w, body)
			return
		case "/api/auth/register":
			f.register(w, body)
			return
		}
	}

	if !known {
		http.NotFound(w, r)
		return
	}

	if strings.HasPrefix(r.URL.Path, "/api/dashboard/") && r.Header.Get("Authorization") != "Bearer "+f.Token {
		writeFailure(w, failure{status: http.StatusUnauthorized, message: "Invalid token"})
		return
	}

	if strings.HasSuffix(r.URL.Path, "/export-top-customers") {
		w.Header().Set("Content-Type", "text/csv")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	_, _ = w.Write([]byte(resp))
}

func (f *FakeAPI) login(w http.ResponseWriter, body string) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.Unmarshal([]byte(body), &in)

	f.mu.Lock()
	known := f.registered[in.Email]
	f.mu.Unlock()

	if !known || (in.Email == FakeEmail && in.Password != FakePassword) {
		writeFailure(w, failure{status: http.StatusUnauthorized, message: "Wrong email or password"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": f.Token})
}

func (f *FakeAPI) register(w http.ResponseWriter, body string) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.Unmarshal([]byte(body), &in)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registered[in.Email] {
		writeFailure(w, failure{status: http.StatusConflict, message: "User already exists"})
		return
	}
	f.registered[in.Email] = true
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "User registered"})
}

func writeFailure(w http.ResponseWriter, f failure) {
	if f.message == "" {
		w.WriteHeader(f.status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": f.message})
}

// SignedToken returns an HS256 JWT carrying name and email claims.
func SignedToken(t *testing.T, name, email string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name":  name,
		"email": email,
	})
	s, err := tok.SignedString([]byte("fake-api-signing-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
