package middleware

import (
	"net/http"

	"github.com/capmon/capmon"
	metricSource "github.com/capmon/capmon/metric_source"
)

type contextKey string

func (key contextKey) String() string {
	return "api context key " + string(key)
}

var (
	metricSourceProviderKey contextKey = "metricSourceProvider"
	forecasterKey           contextKey = "forecaster"
	fromKey                 contextKey = "from"
	untilKey                contextKey = "until"
	lookbackKey             contextKey = "lookback"
	horizonKey              contextKey = "horizon"
	plotKey                 contextKey = "plot"
	themeKey                contextKey = "theme"
)

// GetMetricSourceProvider gets metric sources provider from request context, which was sets in MetricSourceProvider middleware
func GetMetricSourceProvider(request *http.Request) *metricSource.SourceProvider {
	return request.Context().Value(metricSourceProviderKey).(*metricSource.SourceProvider)
}

// GetForecaster gets forecaster from request context, which was sets in ForecasterContext middleware
func GetForecaster(request *http.Request) capmon.Forecaster {
	return request.Context().Value(forecasterKey).(capmon.Forecaster)
}

// GetFromStr gets 'from' value from request context, which was sets in DateRange middleware
func GetFromStr(request *http.Request) string {
	return request.Context().Value(fromKey).(string)
}

// GetUntilStr gets 'until' value from request context, which was sets in DateRange middleware
func GetUntilStr(request *http.Request) string {
	return request.Context().Value(untilKey).(string)
}

// GetLookback gets lookback days from request context, which was sets in ForecastWindow middleware.
// Zero means that lookback wasn't requested
func GetLookback(request *http.Request) int {
	return request.Context().Value(lookbackKey).(int)
}

// GetHorizon gets horizon days from request context, which was sets in ForecastWindow middleware
func GetHorizon(request *http.Request) int {
	return request.Context().Value(horizonKey).(int)
}

// GetPlot gets plot kind from request context, which was sets in PlotParams middleware
func GetPlot(request *http.Request) string {
	return request.Context().Value(plotKey).(string)
}

// GetTheme gets plot theme from request context, which was sets in PlotParams middleware
func GetTheme(request *http.Request) string {
	return request.Context().Value(themeKey).(string)
}
