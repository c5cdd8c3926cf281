package chartjs_test

import (
	"testing"

	"github.com/dalemusser/xenodash/internal/app/system/chartjs"
)

func TestJSON_EmptyChart(t *testing.T) {
	got := chartjs.Chart{ID: "x", Type: chartjs.Line}.JSON()
	want := `{"labels":[],"datasets":[]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSON_PieColoursArray(t *testing.T) {
	c := chartjs.Chart{
		Type: chartjs.Pie,
		Data: chartjs.Data{
			Labels: []string{"A B"},
			Datasets: []chartjs.Dataset{{
				Data:            []float64{10},
				BackgroundColor: []string{"#3182ce"},
			}},
		},
	}
	want := `{"labels":["A B"],"datasets":[{"data":[10],"backgroundColor":["#3182ce"]}]}`
	if got := c.JSON(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSON_NilSeriesBecomesEmpty(t *testing.T) {
	c := chartjs.Chart{Data: chartjs.Data{Datasets: []chartjs.Dataset{{Label: "Orders"}}}}
	want := `{"labels":[],"datasets":[{"label":"Orders","data":[]}]}`
	if got := c.JSON(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
