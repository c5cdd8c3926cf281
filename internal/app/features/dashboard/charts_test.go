package dashboard_test

import (
	"testing"

	"github.com/dalemusser/xenodash/internal/app/features/dashboard"
	"github.com/dalemusser/xenodash/internal/app/system/chartjs"
	"github.com/dalemusser/xenodash/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineChart(t *testing.T) {
	var rev models.Number
	require.NoError(t, rev.UnmarshalJSON([]byte(`"120.50"`)))
	points := []models.OrderByDate{{Date: "2024-01-01", OrdersCount: 3, Revenue: rev}}

	c := dashboard.LineChart(points)

	assert.Equal(t, chartjs.Line, c.Type)
	assert.Equal(t, []string{"1/1/2024"}, c.Data.Labels)
	require.Len(t, c.Data.Datasets, 2)

	revenue := c.Data.Datasets[0]
	assert.Equal(t, "Revenue", revenue.Label)
	assert.Equal(t, []float64{120.5}, revenue.Data)
	assert.Equal(t, dashboard.RevenueColor, revenue.BorderColor)
	assert.Equal(t, 0.3, revenue.Tension)

	orders := c.Data.Datasets[1]
	assert.Equal(t, "Orders", orders.Label)
	assert.Equal(t, []float64{3}, orders.Data)
	assert.Equal(t, dashboard.OrdersColor, orders.BorderColor)
}

func TestBarChart(t *testing.T) {
	c := dashboard.BarChart([]models.OrderByDate{
		{Date: "2024-01-01", OrdersCount: 3},
		{Date: "2024-01-02"},
	})

	assert.Equal(t, chartjs.Bar, c.Type)
	assert.Equal(t, []string{"1/1/2024", "1/2/2024"}, c.Data.Labels)
	require.Len(t, c.Data.Datasets, 1)
	assert.Equal(t, "Orders per Day", c.Data.Datasets[0].Label)
	assert.Equal(t, []float64{3, 0}, c.Data.Datasets[0].Data)
	assert.Equal(t, dashboard.OrdersPerDayFill, c.Data.Datasets[0].BackgroundColor)
}

func TestPieChart_PaletteCycles(t *testing.T) {
	var customers []models.TopCustomer
	for i := 0; i < 7; i++ {
		customers = append(customers, models.TopCustomer{FirstName: "C", LastName: string(rune('a' + i)), TotalSpent: models.Number(i)})
	}

	c := dashboard.PieChart(customers)

	require.Len(t, c.Data.Datasets, 1)
	colors, ok := c.Data.Datasets[0].BackgroundColor.([]string)
	require.True(t, ok)
	require.Len(t, colors, 7)
	assert.Equal(t, "#3182ce", colors[0])
	assert.Equal(t, "#9f7aea", colors[4])
	assert.Equal(t, "#3182ce", colors[5])
	assert.Equal(t, "#48bb78", colors[6])
	assert.Equal(t, "C a", c.Data.Labels[0])
	assert.Equal(t, 6.0, c.Data.Datasets[0].Data[6])
}

func TestCharts_Empty(t *testing.T) {
	assert.Empty(t, dashboard.LineChart(nil).Data.Labels)
	assert.Empty(t, dashboard.PieChart(nil).Data.Labels)
	assert.JSONEq(t, `{"labels":[],"datasets":[{"label":"Orders per Day","data":[],"backgroundColor":"#4e73df"}]}`, dashboard.BarChart(nil).JSON())
}
