package forecast

import (
	"errors"
	"time"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/metrics"
)

// BuildReport forecasts every series independently and aggregates trends of all forecasts.
// Series which can't be forecasted are skipped while at least one forecast succeeds.
func BuildReport(forecaster capmon.Forecaster, logger capmon.Logger, datasource, query string, series []capmon.MetricSeries, horizon time.Duration) (*capmon.ForecastReport, error) {
	report := &capmon.ForecastReport{
		Datasource: datasource,
		Query:      query,
		Forecasts:  make([]capmon.ForecastResult, 0, len(series)),
	}

	var firstErr error
	for _, s := range series {
		result, err := forecaster.Forecast(s, horizon)
		if err != nil {
			var forecastErr capmon.ForecastError
			if !errors.As(err, &forecastErr) {
				return nil, err
			}
			logger.Warning().
				Error(err).
				String("series", s.Name).
				Msg("Series skipped")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		report.Forecasts = append(report.Forecasts, *result)
	}

	if len(report.Forecasts) == 0 {
		if firstErr == nil {
			firstErr = capmon.ForecastError{Series: query, Err: errors.New("no series to forecast")}
		}
		return nil, firstErr
	}

	report.WeeklyTrend = WeeklyTrend(report.Forecasts)
	report.DailyTrend = DailyTrend(report.Forecasts)
	return report, nil
}

type instrumentedForecaster struct {
	capmon.Forecaster
	metrics *metrics.ForecastMetrics
}

// Instrument wraps forecaster to count forecasts and measure their duration
func Instrument(forecaster capmon.Forecaster, forecastMetrics *metrics.ForecastMetrics) capmon.Forecaster {
	if forecastMetrics == nil {
		return forecaster
	}
	return &instrumentedForecaster{Forecaster: forecaster, metrics: forecastMetrics}
}

func (forecaster *instrumentedForecaster) Forecast(series capmon.MetricSeries, horizon time.Duration) (*capmon.ForecastResult, error) {
	started := time.Now()
	result, err := forecaster.Forecaster.Forecast(series, horizon)
	forecaster.metrics.ObserveForecast(time.Since(started), err)
	return result, err
}
