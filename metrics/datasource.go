package metrics

import (
	"errors"
	"time"

	"github.com/capmon/capmon"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
	outcomeQueryError  = "query_error"
	outcomeForecast    = "forecast_error"
	outcomeError       = "error"
)

// DatasourceMetrics is a collection of metrics for datasource fetches
type DatasourceMetrics struct {
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewDatasourceMetrics registers datasource metrics in given registerer
func NewDatasourceMetrics(registerer prometheus.Registerer) *DatasourceMetrics {
	datasourceMetrics := &DatasourceMetrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "datasource",
			Name:      getPrometheusMetricName("queries", "total"),
			Help:      "Datasource queries by outcome.",
		}, []string{"datasource", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "datasource",
			Name:      getPrometheusMetricName("query", "duration", "seconds"),
			Help:      "Datasource query duration.",
			Buckets:   durationBuckets,
		}, []string{"datasource"}),
	}
	registerer.MustRegister(datasourceMetrics.fetches, datasourceMetrics.fetchDuration)
	return datasourceMetrics
}

// ObserveFetch counts fetch by its outcome and records its duration
func (datasourceMetrics *DatasourceMetrics) ObserveFetch(datasource string, elapsed time.Duration, err error) {
	datasourceMetrics.fetches.WithLabelValues(datasource, outcome(err)).Inc()
	datasourceMetrics.fetchDuration.WithLabelValues(datasource).Observe(elapsed.Seconds())
}

// ForecastMetrics is a collection of metrics for forecasts
type ForecastMetrics struct {
	forecasts        *prometheus.CounterVec
	forecastDuration prometheus.Histogram
}

// NewForecastMetrics registers forecast metrics in given registerer
func NewForecastMetrics(registerer prometheus.Registerer) *ForecastMetrics {
	forecastMetrics := &ForecastMetrics{
		forecasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forecast",
			Name:      getPrometheusMetricName("runs", "total"),
			Help:      "Forecasts by outcome.",
		}, []string{"outcome"}),
		forecastDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "forecast",
			Name:      getPrometheusMetricName("duration", "seconds"),
			Help:      "Forecast duration.",
			Buckets:   durationBuckets,
		}),
	}
	registerer.MustRegister(forecastMetrics.forecasts, forecastMetrics.forecastDuration)
	return forecastMetrics
}

// ObserveForecast counts forecast by its outcome and records its duration
func (forecastMetrics *ForecastMetrics) ObserveForecast(elapsed time.Duration, err error) {
	forecastMetrics.forecasts.WithLabelValues(outcome(err)).Inc()
	forecastMetrics.forecastDuration.Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}

	var unavailable capmon.DatasourceUnavailable
	var queryErr capmon.QueryError
	var forecastErr capmon.ForecastError
	switch {
	case errors.As(err, &unavailable):
		return outcomeUnavailable
	case errors.As(err, &queryErr):
		return outcomeQueryError
	case errors.As(err, &forecastErr):
		return outcomeForecast
	default:
		return outcomeError
	}
}
