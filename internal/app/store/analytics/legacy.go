// internal/app/store/analytics/legacy.go
package analytics

import (
	"context"
	"net/http"

	"github.com/dalemusser/xenodash/internal/domain/models"
)

// LegacyClient reads headline metrics from the older, unauthenticated
// service. Each method issues a single GET and returns one field of the
// JSON body (or the whole array). Errors are returned unchanged.
type LegacyClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewLegacy constructs a LegacyClient. A nil hc means http.DefaultClient.
func NewLegacy(baseURL string, hc *http.Client) *LegacyClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &LegacyClient{BaseURL: baseURL, HTTP: hc}
}

func (c *LegacyClient) get(ctx context.Context, path string, out any) error {
	req, err := newRequest(ctx, http.MethodGet, endpoint(c.BaseURL, path, nil), nil)
	if err != nil {
		return err
	}
	return sendJSON(c.HTTP, req, out)
}

// TotalCustomers returns total_customers from GET /total-customers.
func (c *LegacyClient) TotalCustomers(ctx context.Context) (models.Number, error) {
	var out struct {
		TotalCustomers models.Number `json:"total_customers"`
	}
	err := c.get(ctx, "/total-customers", &out)
	return out.TotalCustomers, err
}

// TotalOrders returns total_orders from GET /total-orders.
func (c *LegacyClient) TotalOrders(ctx context.Context) (models.Number, error) {
	var out struct {
		TotalOrders models.Number `json:"total_orders"`
	}
	err := c.get(ctx, "/total-orders", &out)
	return out.TotalOrders, err
}

// TotalRevenue returns total_revenue from GET /total-revenue.
func (c *LegacyClient) TotalRevenue(ctx context.Context) (models.Number, error) {
	var out struct {
		TotalRevenue models.Number `json:"total_revenue"`
	}
	err := c.get(ctx, "/total-revenue", &out)
	return out.TotalRevenue, err
}

// TopCustomers returns the body of GET /top-customers.
func (c *LegacyClient) TopCustomers(ctx context.Context) ([]models.TopCustomer, error) {
	var out []models.TopCustomer
	if err := c.get(ctx, "/top-customers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrdersByDate returns the body of GET /orders-by-date.
func (c *LegacyClient) OrdersByDate(ctx context.Context) ([]models.OrderByDate, error) {
	var out []models.OrderByDate
	if err := c.get(ctx, "/orders-by-date", &out); err != nil {
		return nil, err
	}
	return out, nil
}
