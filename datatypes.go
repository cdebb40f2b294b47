package capmon

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// DatasourceType is the kind of metrics backend a datasource points to
type DatasourceType string

const (
	// Prometheus datasource is queried by PromQL through /api/v1/query_range
	Prometheus DatasourceType = "prometheus"
	// Graphite datasource is queried by graphite targets through /render
	Graphite DatasourceType = "graphite"
)

// DefaultStep is the resolution datasources are queried with
const DefaultStep = time.Hour

// MaxWindowDays bounds both lookback and forecast horizon
const MaxWindowDays = 365

// DatasourceConfig represents single datasource entry from datasources file
type DatasourceConfig struct {
	Name   string         `json:"name" yaml:"name"`
	Source string         `json:"source" yaml:"source"`
	Type   DatasourceType `json:"type" yaml:"type"`
}

// Label returns datasource label which is shown in dashboard
func (config DatasourceConfig) Label() string {
	return fmt.Sprintf("%s [%s]", config.Name, config.Type)
}

// TimeRange is an interval of unix timestamps to fetch metrics for
type TimeRange struct {
	From  int64
	Until int64
	Step  time.Duration
}

// GetStep returns range step or DefaultStep if it is not set
func (timeRange TimeRange) GetStep() time.Duration {
	if timeRange.Step <= 0 {
		return DefaultStep
	}
	return timeRange.Step
}

// MetricSeries is a named timeseries with timestamps aligned to values
type MetricSeries struct {
	Name       string    `json:"name"`
	Timestamps []int64   `json:"timestamps"`
	Values     []float64 `json:"values"`
}

// Len returns number of points in series
func (series MetricSeries) Len() int {
	return len(series.Timestamps)
}

// Validate checks that timestamps and values are aligned and timestamps never go back
func (series MetricSeries) Validate() error {
	if len(series.Timestamps) != len(series.Values) {
		return fmt.Errorf("series %s has %d timestamps and %d values", series.Name, len(series.Timestamps), len(series.Values))
	}
	for i := 1; i < len(series.Timestamps); i++ {
		if series.Timestamps[i] < series.Timestamps[i-1] {
			return fmt.Errorf("series %s timestamps are not ordered at %d", series.Name, i)
		}
	}
	return nil
}

// Times returns series timestamps as time.Time in UTC
func (series MetricSeries) Times() []time.Time {
	times := make([]time.Time, 0, len(series.Timestamps))
	for _, timestamp := range series.Timestamps {
		times = append(times, Int64ToTime(timestamp))
	}
	return times
}

// WithoutGaps returns copy of series without NaN and Inf values
func (series MetricSeries) WithoutGaps() MetricSeries {
	result := MetricSeries{
		Name:       series.Name,
		Timestamps: make([]int64, 0, len(series.Timestamps)),
		Values:     make([]float64, 0, len(series.Values)),
	}
	for i, value := range series.Values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		result.Timestamps = append(result.Timestamps, series.Timestamps[i])
		result.Values = append(result.Values, value)
	}
	return result
}

// Step returns median distance between neighbour timestamps, or zero for series shorter than two points
func (series MetricSeries) Step() time.Duration {
	if len(series.Timestamps) < 2 {
		return 0
	}
	deltas := make([]int64, 0, len(series.Timestamps)-1)
	for i := 1; i < len(series.Timestamps); i++ {
		deltas = append(deltas, series.Timestamps[i]-series.Timestamps[i-1])
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i] < deltas[j] })
	return time.Duration(deltas[len(deltas)/2]) * time.Second
}

// ForecastBounds are lower and upper uncertainty values for every predicted point
type ForecastBounds struct {
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// ForecastResult is observed series with its prediction
type ForecastResult struct {
	Observed  MetricSeries    `json:"observed"`
	Predicted MetricSeries    `json:"predicted"`
	Bounds    *ForecastBounds `json:"bounds,omitempty"`
}

// TrendProfile is an average predicted value per labeled bucket, e.g. per weekday
type TrendProfile struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ForecastReport is the result of one dashboard analysis
type ForecastReport struct {
	Datasource  string           `json:"datasource"`
	Query       string           `json:"query"`
	Forecasts   []ForecastResult `json:"forecasts"`
	WeeklyTrend TrendProfile     `json:"weekly_trend"`
	DailyTrend  TrendProfile     `json:"daily_trend"`
}
