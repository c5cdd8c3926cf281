// internal/app/features/dashboard/charts.go
package dashboard

import (
	"github.com/dalemusser/xenodash/internal/app/system/chartjs"
	"github.com/dalemusser/xenodash/internal/app/system/numfmt"
	"github.com/dalemusser/xenodash/internal/domain/models"
)

// Chart colours.
const (
	RevenueColor     = "#3182ce"
	RevenueFill      = "rgba(49,130,206,0.2)"
	OrdersColor      = "#48bb78"
	OrdersFill       = "rgba(72,187,120,0.2)"
	OrdersPerDayFill = "#4e73df"
	lineTension      = 0.3
)

// PiePalette colours top-customer slices by position, cycling after five.
var PiePalette = []string{"#3182ce", "#48bb78", "#f6ad55", "#ed64a6", "#9f7aea"}

func dateLabels(points []models.OrderByDate) []string {
	labels := make([]string, 0, len(points))
	for _, p := range points {
		labels = append(labels, numfmt.ShortDate(p.Date))
	}
	return labels
}

// LineChart is the revenue and orders trend.
func LineChart(points []models.OrderByDate) chartjs.Chart {
	revenue := make([]float64, 0, len(points))
	orders := make([]float64, 0, len(points))
	for _, p := range points {
		revenue = append(revenue, p.Revenue.Float())
		orders = append(orders, p.OrdersCount.Float())
	}

	return chartjs.Chart{
		ID:   "chart-trend",
		Type: chartjs.Line,
		Data: chartjs.Data{
			Labels: dateLabels(points),
			Datasets: []chartjs.Dataset{
				{Label: "Revenue", Data: revenue, BorderColor: RevenueColor, BackgroundColor: RevenueFill, Tension: lineTension},
				{Label: "Orders", Data: orders, BorderColor: OrdersColor, BackgroundColor: OrdersFill, Tension: lineTension},
			},
		},
	}
}

// BarChart is orders per day.
func BarChart(points []models.OrderByDate) chartjs.Chart {
	orders := make([]float64, 0, len(points))
	for _, p := range points {
		orders = append(orders, p.OrdersCount.Float())
	}

	return chartjs.Chart{
		ID:   "chart-orders",
		Type: chartjs.Bar,
		Data: chartjs.Data{
			Labels: dateLabels(points),
			Datasets: []chartjs.Dataset{
				{Label: "Orders per Day", Data: orders, BackgroundColor: OrdersPerDayFill},
			},
		},
	}
}

// PieChart is each top customer's share of spend.
func PieChart(customers []models.TopCustomer) chartjs.Chart {
	labels := make([]string, 0, len(customers))
	spend := make([]float64, 0, len(customers))
	colors := make([]string, 0, len(customers))
	for i, c := range customers {
		labels = append(labels, c.FullName())
		spend = append(spend, c.TotalSpent.Float())
		colors = append(colors, PiePalette[i%len(PiePalette)])
	}

	return chartjs.Chart{
		ID:   "chart-share",
		Type: chartjs.Pie,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{
				{Data: spend, BackgroundColor: colors},
			},
		},
	}
}
