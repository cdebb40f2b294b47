package plotting

import (
	"math"
	"time"

	"github.com/capmon/capmon"
)

// plotLimits is a set of limits for given forecasts
type plotLimits struct {
	from    time.Time
	to      time.Time
	lowest  float64
	highest float64
}

// resolveLimits returns common limits of observed, predicted and bound values
func resolveLimits(forecasts []capmon.ForecastResult) plotLimits {
	limits := plotLimits{lowest: math.Inf(1), highest: math.Inf(-1)}
	var from, to int64 = math.MaxInt64, math.MinInt64

	addSeries := func(timestamps []int64, values ...[]float64) {
		for _, timestamp := range timestamps {
			if timestamp < from {
				from = timestamp
			}
			if timestamp > to {
				to = timestamp
			}
		}
		for _, list := range values {
			for _, value := range list {
				if math.IsNaN(value) || math.IsInf(value, 0) {
					continue
				}
				limits.lowest = math.Min(limits.lowest, value)
				limits.highest = math.Max(limits.highest, value)
			}
		}
	}

	for _, forecast := range forecasts {
		addSeries(forecast.Observed.Timestamps, forecast.Observed.Values)
		addSeries(forecast.Predicted.Timestamps, forecast.Predicted.Values)
		if forecast.Bounds != nil {
			addSeries(nil, forecast.Bounds.Lower, forecast.Bounds.Upper)
		}
	}

	if from <= to {
		limits.from = capmon.Int64ToTime(from)
		limits.to = capmon.Int64ToTime(to)
	}
	if math.IsInf(limits.lowest, 1) {
		limits.lowest, limits.highest = 0, 1
	}
	if limits.lowest == limits.highest {
		limits.lowest--
		limits.highest++
	}
	return limits
}

// hasPoints returns true if at least one finite value was found
func hasPoints(forecasts []capmon.ForecastResult) bool {
	for _, forecast := range forecasts {
		for _, value := range forecast.Observed.Values {
			if !math.IsNaN(value) {
				return true
			}
		}
		if len(forecast.Predicted.Values) > 0 {
			return true
		}
	}
	return false
}
