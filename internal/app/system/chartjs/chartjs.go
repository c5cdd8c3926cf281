// Package chartjs holds the subset of the Chart.js data model the
// dashboard hands to the browser. Values are serialised into a data-chart
// attribute and drawn by /static/js/charts.js.
package chartjs

import (
	"encoding/json"
)

// Chart types.
const (
	Line = "line"
	Bar  = "bar"
	Pie  = "pie"
)

// Dataset is one series. BackgroundColor is either a single colour or one
// colour per point (pie slices).
type Dataset struct {
	Label                  string    `json:"label,omitempty"`
	Data                   []float64 `json:"data"`
	BorderColor            string    `json:"borderColor,omitempty"`
	BackgroundColor        any       `json:"backgroundColor,omitempty"`
	Tension                float64   `json:"tension,omitempty"`
	CubicInterpolationMode string    `json:"cubicInterpolationMode,omitempty"`
}

// Data is a chart's labels plus datasets.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Chart is what a template needs to emit one <canvas>.
type Chart struct {
	ID   string
	Type string
	Data Data
}

// JSON returns the chart data for the data-chart attribute. Nil slices are
// encoded as empty arrays so Chart.js always gets a well-formed object.
func (c Chart) JSON() string {
	d := c.Data
	if d.Labels == nil {
		d.Labels = []string{}
	}
	if d.Datasets == nil {
		d.Datasets = []Dataset{}
	}
	for i := range d.Datasets {
		if d.Datasets[i].Data == nil {
			d.Datasets[i].Data = []float64{}
		}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return `{"labels":[],"datasets":[]}`
	}
	return string(b)
}
