// internal/app/features/dashboard/view.go
package dashboard

import (
	"github.com/dalemusser/xenodash/internal/app/system/chartjs"
	"github.com/dalemusser/xenodash/internal/app/system/numfmt"
	"github.com/dalemusser/xenodash/internal/app/system/viewdata"
	"github.com/dalemusser/xenodash/internal/domain/models"
)

type cardVM struct {
	Title string
	Value string
}

type customerRowVM struct {
	Name  string
	Email string
	Spent string
}

type dateFilterVM struct {
	StartDate string
	EndDate   string
}

// MainVM is everything under #dashboard-main: charts and the table, or the
// spinner while a fetch for this session is in flight.
type MainVM struct {
	Loading   bool
	Trend     chartjs.Chart
	PerDay    chartjs.Chart
	Share     chartjs.Chart
	Customers []customerRowVM
}

type pageData struct {
	viewdata.BaseVM
	MainVM
	Filter  dateFilterVM
	Summary []cardVM
}

type partialData struct {
	MainVM
	Summary []cardVM
	Alerts  []string
}

// buildSummary formats the three headline tiles. Missing values are 0.
func buildSummary(s models.SummaryMetrics) []cardVM {
	return []cardVM{
		{Title: "Total Customers", Value: numfmt.Locale(s.TotalCustomers.Float())},
		{Title: "Total Orders", Value: numfmt.Locale(s.TotalOrders.Float())},
		{Title: "Total Revenue", Value: numfmt.Money(numfmt.Rupee, s.TotalRevenue.Float())},
	}
}

// buildMain derives chart data and table rows from the stored datasets. It
// runs on every render; nothing derived is cached.
func buildMain(st models.DashboardState) MainVM {
	rows := make([]customerRowVM, 0, len(st.TopCustomers))
	for _, c := range st.TopCustomers {
		rows = append(rows, customerRowVM{
			Name:  c.FullName(),
			Email: c.Email,
			Spent: numfmt.Money(numfmt.Rupee, c.TotalSpent.Float()),
		})
	}

	return MainVM{
		Loading:   st.Loading,
		Trend:     LineChart(st.OrdersByDate),
		PerDay:    BarChart(st.OrdersByDate),
		Share:     PieChart(st.TopCustomers),
		Customers: rows,
	}
}

func filterVM(rng models.DateRange) dateFilterVM {
	return dateFilterVM{StartDate: rng.StartParam(), EndDate: rng.EndParam()}
}
