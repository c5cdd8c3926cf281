package components_test

import (
	"html"
	"strings"
	"testing"

	"github.com/dalemusser/xenodash/internal/app/features/components"
	"github.com/dalemusser/xenodash/internal/domain/models"
)

func TestSummaryCard(t *testing.T) {
	card := components.NewSummaryCard("Total Revenue", models.Number(1234.5))
	if card.Value != "1234.5" {
		t.Errorf("Value: got %q", card.Value)
	}

	out, err := card.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<h3>Total Revenue</h3>") || !strings.Contains(s, "1234.5") {
		t.Errorf("unexpected markup: %s", s)
	}
}

func TestSummaryCard_EscapesTitle(t *testing.T) {
	out, err := components.SummaryCard{Title: "<b>x</b>", Value: "1"}.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(string(out), "<b>") {
		t.Errorf("title was not escaped: %s", out)
	}
}

func TestTopCustomers_DollarRawSpend(t *testing.T) {
	table := components.NewTopCustomers([]models.TopCustomer{
		{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", TotalSpent: 900.25},
		{FirstName: "Ben", LastName: "Ng", Email: "ben@example.com", TotalSpent: 1500},
	})

	if len(table.Rows) != 2 {
		t.Fatalf("rows: got %d", len(table.Rows))
	}
	if table.Rows[0].Spent != "$900.25" || table.Rows[1].Spent != "$1500" {
		t.Errorf("spend: got %q, %q", table.Rows[0].Spent, table.Rows[1].Spent)
	}
	if table.Rows[0].Name != "Asha Rao" {
		t.Errorf("name: got %q", table.Rows[0].Name)
	}

	out, err := table.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Index(string(out), "Asha Rao") > strings.Index(string(out), "Ben Ng") {
		t.Error("rows should keep input order")
	}
}

func TestTopCustomers_Empty(t *testing.T) {
	out, err := components.NewTopCustomers(nil).HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(string(out), "<td>") {
		t.Error("expected no rows")
	}
}

func TestOrdersChart(t *testing.T) {
	chart := components.NewOrdersChart("legacy-orders", []models.OrderByDate{
		{Date: "2024-01-01", OrdersCount: 3, Revenue: 120.5},
	})

	ds := chart.Chart.Data.Datasets
	if len(ds) != 2 {
		t.Fatalf("datasets: got %d", len(ds))
	}
	if ds[0].Label != "Orders" || ds[0].BorderColor != components.OrdersColor {
		t.Errorf("orders dataset: %+v", ds[0])
	}
	if ds[1].Label != "Revenue" || ds[1].BorderColor != components.RevenueColor {
		t.Errorf("revenue dataset: %+v", ds[1])
	}
	if ds[1].Data[0] != 120.5 {
		t.Errorf("revenue point: got %v", ds[1].Data[0])
	}
	if chart.Chart.Data.Labels[0] != "2024-01-01" {
		t.Errorf("label: got %q", chart.Chart.Data.Labels[0])
	}

	out, err := chart.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	s := html.UnescapeString(string(out))
	if !strings.Contains(s, `id="legacy-orders"`) || !strings.Contains(s, `"label":"Orders"`) {
		t.Errorf("unexpected markup: %s", s)
	}
}

func TestRaw(t *testing.T) {
	tests := []struct {
		in   models.Number
		want string
	}{
		{0, "0"},
		{42, "42"},
		{120.5, "120.5"},
	}
	for _, tc := range tests {
		if got := components.Raw(tc.in); got != tc.want {
			t.Errorf("Raw(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
