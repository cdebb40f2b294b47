package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api"
	metricSource "github.com/capmon/capmon/metric_source"
	"github.com/go-chi/render"
)

// MetricSourceProvider adds metrics source provider to context
func MetricSourceProvider(sourceProvider *metricSource.SourceProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := context.WithValue(request.Context(), metricSourceProviderKey, sourceProvider)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// ForecasterContext adds forecaster to context
func ForecasterContext(forecaster capmon.Forecaster) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := context.WithValue(request.Context(), forecasterKey, forecaster)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// DateRange gets from and until values from URI query and set it to request context. If query has not values sets given values
func DateRange(defaultFrom, defaultUntil string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			urlValues, err := url.ParseQuery(request.URL.RawQuery)
			if err != nil {
				render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
				return
			}

			from := urlValues.Get("from")
			if from == "" {
				from = defaultFrom
			}
			until := urlValues.Get("until")
			if until == "" {
				until = defaultUntil
			}

			ctx := context.WithValue(request.Context(), fromKey, from)
			ctx = context.WithValue(ctx, untilKey, until)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// ForecastWindow gets lookback and horizon days from URI query and set it to request context.
// Lookback is optional, horizon falls back to given value. Non positive values are rejected
func ForecastWindow(defaultHorizon int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			urlValues, err := url.ParseQuery(request.URL.RawQuery)
			if err != nil {
				render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
				return
			}

			lookback, err := parseDays(urlValues.Get("lookback"), 0)
			if err != nil {
				render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("lookback: %w", err))) //nolint
				return
			}
			horizon, err := parseDays(urlValues.Get("horizon"), defaultHorizon)
			if err != nil {
				render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("horizon: %w", err))) //nolint
				return
			}

			ctx := context.WithValue(request.Context(), lookbackKey, lookback)
			ctx = context.WithValue(ctx, horizonKey, horizon)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// PlotParams gets plot kind and theme from URI query and set it to request context. If query has not values sets given values
func PlotParams(defaultPlot, defaultTheme string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			urlValues, err := url.ParseQuery(request.URL.RawQuery)
			if err != nil {
				render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
				return
			}

			plot := urlValues.Get("plot")
			if plot == "" {
				plot = defaultPlot
			}
			theme := urlValues.Get("theme")
			if theme == "" {
				theme = defaultTheme
			}

			ctx := context.WithValue(request.Context(), plotKey, plot)
			ctx = context.WithValue(ctx, themeKey, theme)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func parseDays(value string, defaultDays int) (int, error) {
	if value == "" {
		return defaultDays, nil
	}
	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number of days", value)
	}
	if days <= 0 || days > capmon.MaxWindowDays {
		return 0, fmt.Errorf("days must be in range 1..%d, got %d", capmon.MaxWindowDays, days)
	}
	return days, nil
}
