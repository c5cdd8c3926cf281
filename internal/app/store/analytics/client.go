// internal/app/store/analytics/client.go
package analytics

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dalemusser/xenodash/internal/domain/models"
	"golang.org/x/oauth2"
)

// Paths on the primary analytics API.
const (
	PathRegister           = "/api/auth/register"
	PathLogin              = "/api/auth/login"
	PathSummary            = "/api/dashboard/summary"
	PathOrdersByDate       = "/api/dashboard/orders-by-date"
	PathTopCustomers       = "/api/dashboard/top-customers"
	PathExportTopCustomers = "/api/dashboard/export-top-customers"
)

// ErrNoToken is returned by Login when the server answers 2xx without a token.
var ErrNoToken = errors.New("analytics: login response carried no token")

// Client talks to the primary, authenticated analytics API.
//
// It does not retry, cache or impose its own timeout; callers bound each
// call with a context deadline.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New constructs a Client. A nil hc means http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{BaseURL: baseURL, HTTP: hc}
}

// authed returns an http.Client that adds "Authorization: Bearer <token>"
// on top of the configured transport.
func (c *Client) authed(token string) *http.Client {
	base := c.HTTP.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   base,
		},
		Timeout: c.HTTP.Timeout,
	}
}

// Register creates an account. It never returns a token; the caller must log
// in afterwards.
func (c *Client) Register(ctx context.Context, creds models.Credentials) error {
	req, err := newRequest(ctx, http.MethodPost, endpoint(c.BaseURL, PathRegister, nil), creds)
	if err != nil {
		return err
	}
	return sendJSON(c.HTTP, req, nil)
}

// Login exchanges email and password for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := models.Credentials{Email: email, Password: password}
	req, err := newRequest(ctx, http.MethodPost, endpoint(c.BaseURL, PathLogin, nil), body)
	if err != nil {
		return "", err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := sendJSON(c.HTTP, req, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", ErrNoToken
	}
	return out.Token, nil
}

// Summary fetches total customers, orders and revenue.
func (c *Client) Summary(ctx context.Context, token string) (models.SummaryMetrics, error) {
	var out models.SummaryMetrics
	req, err := newRequest(ctx, http.MethodGet, endpoint(c.BaseURL, PathSummary, nil), nil)
	if err != nil {
		return out, err
	}
	err = sendJSON(c.authed(token), req, &out)
	return out, err
}

// OrdersByDate fetches the orders/revenue series. startDate and endDate are
// sent only when the corresponding bound is set.
func (c *Client) OrdersByDate(ctx context.Context, token string, rng models.DateRange) ([]models.OrderByDate, error) {
	q := url.Values{}
	if s := rng.StartParam(); s != "" {
		q.Set("startDate", s)
	}
	if e := rng.EndParam(); e != "" {
		q.Set("endDate", e)
	}

	req, err := newRequest(ctx, http.MethodGet, endpoint(c.BaseURL, PathOrdersByDate, q), nil)
	if err != nil {
		return nil, err
	}

	var out []models.OrderByDate
	if err := sendJSON(c.authed(token), req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopCustomers fetches the server-ranked top customers.
func (c *Client) TopCustomers(ctx context.Context, token string) ([]models.TopCustomer, error) {
	req, err := newRequest(ctx, http.MethodGet, endpoint(c.BaseURL, PathTopCustomers, nil), nil)
	if err != nil {
		return nil, err
	}

	var out []models.TopCustomer
	if err := sendJSON(c.authed(token), req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportTopCustomers downloads the top-customers CSV as raw bytes.
func (c *Client) ExportTopCustomers(ctx context.Context, token string) ([]byte, error) {
	req, err := newRequest(ctx, http.MethodGet, endpoint(c.BaseURL, PathExportTopCustomers, nil), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, application/octet-stream, */*")
	return send(c.authed(token), req)
}

// Ping checks that the API base answers at all. Any HTTP response, including
// 404, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(c.BaseURL, "/", nil), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
