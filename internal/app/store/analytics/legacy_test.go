package analytics_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dalemusser/xenodash/internal/app/store/analytics"
	"github.com/dalemusser/xenodash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyClient_NamedFields(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	c := analytics.NewLegacy(api.URL()+"/", api.Server.Client())
	ctx := context.Background()

	customers, err := c.TotalCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42.0, customers.Float())

	orders, err := c.TotalOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17.0, orders.Float())

	revenue, err := c.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, revenue.Float())

	top, err := c.TopCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	series, err := c.OrdersByDate(ctx)
	require.NoError(t, err)
	assert.Len(t, series, 2)

	for _, p := range []string{"/total-customers", "/total-orders", "/total-revenue", "/top-customers", "/orders-by-date"} {
		reqs := api.Requests(p)
		require.Len(t, reqs, 1, p)
		assert.Equal(t, http.MethodGet, reqs[0].Method)
		assert.Empty(t, reqs[0].Authorization, "legacy calls are unauthenticated")
	}
}

func TestLegacyClient_ErrorsPropagate(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Fail("/total-orders", http.StatusServiceUnavailable, "")
	c := analytics.NewLegacy(api.URL(), api.Server.Client())

	_, err := c.TotalOrders(context.Background())
	var apiErr *analytics.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
}
