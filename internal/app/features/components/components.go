// Package components renders the small stand-alone dashboard widgets: a
// metric tile, a top-customers table and an orders/revenue line chart.
//
// Each widget is a pure function of its input and renders to template.HTML,
// so any page can drop one in without registering extra template sets. The
// main dashboard draws its own charts; these widgets back the overview page.
package components

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"github.com/dalemusser/xenodash/internal/app/system/chartjs"
	"github.com/dalemusser/xenodash/internal/domain/models"
)

//go:embed templates/*.gohtml
var FS embed.FS

var tmpl = template.Must(template.New("components").ParseFS(FS, "templates/*.gohtml"))

// Line colours for OrdersChart.
const (
	OrdersColor  = "#8884d8"
	RevenueColor = "#82ca9d"
)

// SummaryCard is a label/value tile. Value is shown exactly as given.
type SummaryCard struct {
	Title string
	Value string
}

// NewSummaryCard builds a tile for a numeric metric, printing the number
// without grouping or padding.
func NewSummaryCard(title string, v models.Number) SummaryCard {
	return SummaryCard{Title: title, Value: Raw(v)}
}

// HTML renders the tile.
func (c SummaryCard) HTML() (template.HTML, error) {
	return render("component_summary_card", c)
}

// TopCustomerRow is one rendered row of the table.
type TopCustomerRow struct {
	Name  string
	Email string
	Spent string
}

// TopCustomers is a plain, unsortable table in the order given.
type TopCustomers struct {
	Title string
	Rows  []TopCustomerRow
}

// NewTopCustomers builds the table. Spend is "$" followed by the raw value.
func NewTopCustomers(customers []models.TopCustomer) TopCustomers {
	t := TopCustomers{Title: "Top 5 Customers by Spend", Rows: make([]TopCustomerRow, 0, len(customers))}
	for _, c := range customers {
		t.Rows = append(t.Rows, TopCustomerRow{
			Name:  c.FullName(),
			Email: c.Email,
			Spent: "$" + Raw(c.TotalSpent),
		})
	}
	return t
}

// HTML renders the table.
func (t TopCustomers) HTML() (template.HTML, error) {
	return render("component_top_customers", t)
}

// OrdersChart is a two-line chart over the series, keyed by the raw date.
type OrdersChart struct {
	Chart chartjs.Chart
}

// NewOrdersChart builds the chart with an Orders line and a Revenue line.
func NewOrdersChart(id string, points []models.OrderByDate) OrdersChart {
	labels := make([]string, 0, len(points))
	orders := make([]float64, 0, len(points))
	revenue := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Date)
		orders = append(orders, p.OrdersCount.Float())
		revenue = append(revenue, p.Revenue.Float())
	}

	return OrdersChart{Chart: chartjs.Chart{
		ID:   id,
		Type: chartjs.Line,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{
				{Label: "Orders", Data: orders, BorderColor: OrdersColor, BackgroundColor: OrdersColor, CubicInterpolationMode: "monotone"},
				{Label: "Revenue", Data: revenue, BorderColor: RevenueColor, BackgroundColor: RevenueColor, CubicInterpolationMode: "monotone"},
			},
		},
	}}
}

// HTML renders the chart canvas.
func (c OrdersChart) HTML() (template.HTML, error) {
	return render("component_orders_chart", c.Chart)
}

// Raw prints a number the shortest way that round-trips: 120.5, 42, 0.
func Raw(v models.Number) string {
	return strconv.FormatFloat(v.Float(), 'f', -1, 64)
}

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
