package forecast

import (
	"errors"
	"fmt"
	"time"

	"github.com/capmon/capmon"
)

const (
	// MinObservations is the least amount of usable points a series must have to be forecasted
	MinObservations = 24
	// MaxPredictions is the most points predicted for one series, a year of hourly points
	MaxPredictions = capmon.MaxWindowDays * 24
)

var (
	errNotEnoughObservations = fmt.Errorf("series must have at least %d observations", MinObservations)
	errBadHorizon            = errors.New("forecast horizon must be positive")
	errTooManyPredictions    = fmt.Errorf("forecast horizon exceeds %d predicted points", MaxPredictions)
)

// Forecaster builds predictions with go-forecaster
type Forecaster struct {
	logger   capmon.Logger
	newModel modelFactory
}

// NewForecaster creates Forecaster which fits new model for every series
func NewForecaster(logger capmon.Logger) *Forecaster {
	return &Forecaster{
		logger:   logger,
		newModel: newForecasterModel,
	}
}

// Forecast fits model on observed points and predicts ceil(horizon/step) points after the last one.
// Step is the median spacing of observed points.
func (forecaster *Forecaster) Forecast(series capmon.MetricSeries, horizon time.Duration) (*capmon.ForecastResult, error) {
	if err := series.Validate(); err != nil {
		return nil, capmon.ForecastError{Series: series.Name, Err: err}
	}
	if horizon <= 0 {
		return nil, capmon.ForecastError{Series: series.Name, Err: errBadHorizon}
	}

	observed := series.WithoutGaps()
	if observed.Len() < MinObservations {
		return nil, capmon.ForecastError{Series: series.Name, Err: errNotEnoughObservations}
	}

	step := observed.Step()
	if step <= 0 {
		step = capmon.DefaultStep
	}

	if predictionsCount(step, horizon) > MaxPredictions {
		return nil, capmon.ForecastError{Series: series.Name, Err: errTooManyPredictions}
	}
	predictedTimestamps := futureTimestamps(observed.Timestamps[observed.Len()-1], step, horizon)
	predictedTimes := make([]time.Time, 0, len(predictedTimestamps))
	for _, timestamp := range predictedTimestamps {
		predictedTimes = append(predictedTimes, capmon.Int64ToTime(timestamp))
	}

	model, err := forecaster.newModel()
	if err != nil {
		return nil, capmon.ForecastError{Series: series.Name, Err: err}
	}
	if err := model.Fit(observed.Times(), observed.Values); err != nil {
		return nil, capmon.ForecastError{Series: series.Name, Err: fmt.Errorf("fit: %w", err)}
	}
	res, err := model.Predict(predictedTimes)
	if err != nil {
		return nil, capmon.ForecastError{Series: series.Name, Err: fmt.Errorf("predict: %w", err)}
	}
	if len(res.values) != len(predictedTimestamps) {
		return nil, capmon.ForecastError{
			Series: series.Name,
			Err:    fmt.Errorf("model returned %d points instead of %d", len(res.values), len(predictedTimestamps)),
		}
	}

	result := &capmon.ForecastResult{
		Observed: observed,
		Predicted: capmon.MetricSeries{
			Name:       series.Name,
			Timestamps: predictedTimestamps,
			Values:     res.values,
		},
	}
	if len(res.lower) == len(predictedTimestamps) && len(res.upper) == len(predictedTimestamps) {
		result.Bounds = &capmon.ForecastBounds{Lower: res.lower, Upper: res.upper}
	}

	forecaster.logger.Debug().
		String("series", series.Name).
		Int("observed", observed.Len()).
		Int("predicted", len(predictedTimestamps)).
		String("horizon", horizon.String()).
		Msg("Forecast built")

	return result, nil
}

// predictionsCount is ceil(horizon/step) computed without overflow
func predictionsCount(step, horizon time.Duration) int64 {
	count := int64(horizon / step)
	if horizon%step != 0 {
		count++
	}
	return count
}

func futureTimestamps(last int64, step, horizon time.Duration) []int64 {
	count := int(predictionsCount(step, horizon))
	stepSeconds := int64(step / time.Second)

	timestamps := make([]int64, 0, count)
	for i := 1; i <= count; i++ {
		timestamps = append(timestamps, last+stepSeconds*int64(i))
	}
	return timestamps
}
