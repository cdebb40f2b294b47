package templating

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/capmon/capmon"
)

//go:embed templates/dashboard.html
var dashboardTemplate string

// Option is one entry of dashboard select field
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Chart is rendered plot shown in dashboard
type Chart struct {
	Title string
	PNG   []byte
}

// SeriesSummary describes one forecasted series in dashboard table
type SeriesSummary struct {
	Name           string
	Observed       int
	LastObserved   float64
	Predicted      int
	LastPredicted  float64
	PredictedUntil int64
}

// DashboardPage is the data dashboard template is executed with
type DashboardPage struct {
	Title       string
	Datasources []Option
	Query       string
	Lookbacks   []Option
	Horizons    []Option
	Themes      []Option
	Theme       string
	Charts      []Chart
	Series      []SeriesSummary
	Error       string
}

// Dashboard renders dashboard page
type Dashboard struct {
	template *template.Template
}

// NewDashboard parses embedded dashboard template
func NewDashboard() (*Dashboard, error) {
	dashboard, err := template.New("dashboard").Funcs(funcMap()).Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return &Dashboard{template: dashboard}, nil
}

// Render executes template into buffer first, so broken page is never partially written
func (dashboard *Dashboard) Render(writer io.Writer, page DashboardPage) error {
	buffer := bytes.Buffer{}
	if err := dashboard.template.Execute(&buffer, page); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	_, err := buffer.WriteTo(writer)
	return err
}

// DaysOptions creates select options of day counts, selected one is marked
func DaysOptions(days []int, selected int) []Option {
	options := make([]Option, 0, len(days))
	for _, d := range days {
		options = append(options, Option{
			Value:    strconv.Itoa(d),
			Label:    fmt.Sprintf("%d days", d),
			Selected: d == selected,
		})
	}
	return options
}

// SummarizeForecasts describes every forecast by its last observed and predicted values
func SummarizeForecasts(forecasts []capmon.ForecastResult) []SeriesSummary {
	summaries := make([]SeriesSummary, 0, len(forecasts))
	for _, forecast := range forecasts {
		summary := SeriesSummary{
			Name:          forecast.Observed.Name,
			Observed:      forecast.Observed.Len(),
			LastObserved:  lastValue(forecast.Observed.Values),
			Predicted:     forecast.Predicted.Len(),
			LastPredicted: lastValue(forecast.Predicted.Values),
		}
		if n := len(forecast.Predicted.Timestamps); n > 0 {
			summary.PredictedUntil = forecast.Predicted.Timestamps[n-1]
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func lastValue(values []float64) float64 {
	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			return values[i]
		}
	}
	return math.NaN()
}
