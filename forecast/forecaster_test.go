package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/capmon/capmon"
	logging "github.com/capmon/capmon/logging/zerolog_adapter"

	. "github.com/smartystreets/goconvey/convey"
)

// linearModel predicts last fitted value plus slope per second, bounds are +-1
type linearModel struct {
	lastTime  time.Time
	lastValue float64
	slope     float64
	fitErr    error
	shortBy   int
}

func (model *linearModel) Fit(t []time.Time, y []float64) error {
	if model.fitErr != nil {
		return model.fitErr
	}
	model.lastTime = t[len(t)-1]
	model.lastValue = y[len(y)-1]
	model.slope = (y[len(y)-1] - y[0]) / t[len(t)-1].Sub(t[0]).Seconds()
	return nil
}

func (model *linearModel) Predict(t []time.Time) (*prediction, error) {
	res := &prediction{}
	for _, point := range t[:len(t)-model.shortBy] {
		value := model.lastValue + model.slope*point.Sub(model.lastTime).Seconds()
		res.values = append(res.values, value)
		res.lower = append(res.lower, value-1)
		res.upper = append(res.upper, value+1)
	}
	return res, nil
}

func newTestForecaster(model *linearModel) *Forecaster {
	logger, _ := logging.GetLogger("Test")
	return &Forecaster{
		logger:   logger,
		newModel: func() (seriesModel, error) { return model, nil },
	}
}

func hourlySeries(name string, start int64, values []float64) capmon.MetricSeries {
	series := capmon.MetricSeries{Name: name}
	for i, value := range values {
		series.Timestamps = append(series.Timestamps, start+int64(i)*3600)
		series.Values = append(series.Values, value)
	}
	return series
}

func linearValues(count int) []float64 {
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		values = append(values, float64(i))
	}
	return values
}

func TestForecast(t *testing.T) {
	var start int64 = 1595808000 // 2020-07-27 00:00:00 UTC, Monday

	Convey("Given hourly series with enough points", t, func() {
		forecaster := newTestForecaster(&linearModel{})
		series := hourlySeries("cpu", start, linearValues(48))

		result, err := forecaster.Forecast(series, 24*time.Hour)

		So(err, ShouldBeNil)
		So(result.Observed, ShouldResemble, series)
		So(result.Predicted.Name, ShouldEqual, "cpu")
		So(result.Predicted.Timestamps, ShouldHaveLength, 24)
		So(result.Predicted.Timestamps[0], ShouldEqual, start+48*3600)
		So(result.Predicted.Timestamps[23], ShouldEqual, start+71*3600)
		So(result.Predicted.Values[0], ShouldAlmostEqual, 48)
		So(result.Bounds, ShouldNotBeNil)
		So(result.Bounds.Lower, ShouldHaveLength, 24)
		So(result.Bounds.Upper[0], ShouldAlmostEqual, 49)
	})

	Convey("Horizon which is not multiple of step is rounded up", t, func() {
		forecaster := newTestForecaster(&linearModel{})

		result, err := forecaster.Forecast(hourlySeries("cpu", start, linearValues(30)), 90*time.Minute)

		So(err, ShouldBeNil)
		So(result.Predicted.Timestamps, ShouldResemble, []int64{start + 30*3600, start + 31*3600})
	})

	Convey("Step is taken from series spacing", t, func() {
		forecaster := newTestForecaster(&linearModel{})
		series := capmon.MetricSeries{Name: "rps"}
		for i := 0; i < 30; i++ {
			series.Timestamps = append(series.Timestamps, start+int64(i)*600)
			series.Values = append(series.Values, 1)
		}

		result, err := forecaster.Forecast(series, time.Hour)

		So(err, ShouldBeNil)
		So(result.Predicted.Timestamps, ShouldHaveLength, 6)
		So(result.Predicted.Timestamps[0], ShouldEqual, start+30*600)
	})

	Convey("Gaps are removed before counting observations", t, func() {
		forecaster := newTestForecaster(&linearModel{})
		values := linearValues(30)
		for i := 0; i < 10; i++ {
			values[i] = math.NaN()
		}

		result, err := forecaster.Forecast(hourlySeries("cpu", start, values), time.Hour)

		So(result, ShouldBeNil)
		So(err, ShouldResemble, capmon.ForecastError{Series: "cpu", Err: errNotEnoughObservations})
	})

	Convey("Given too short series", t, func() {
		forecaster := newTestForecaster(&linearModel{})

		result, err := forecaster.Forecast(hourlySeries("cpu", start, linearValues(MinObservations-1)), time.Hour)

		So(result, ShouldBeNil)
		So(err.Error(), ShouldEqual, "failed to forecast cpu: series must have at least 24 observations")
	})

	Convey("Given horizon longer than a year of hourly points", t, func() {
		forecaster := newTestForecaster(&linearModel{})

		result, err := forecaster.Forecast(hourlySeries("cpu", start, linearValues(48)), time.Duration(MaxPredictions+1)*time.Hour)

		So(result, ShouldBeNil)
		So(err, ShouldResemble, capmon.ForecastError{Series: "cpu", Err: errTooManyPredictions})
	})

	Convey("Given not positive horizon", t, func() {
		forecaster := newTestForecaster(&linearModel{})

		result, err := forecaster.Forecast(hourlySeries("cpu", start, linearValues(48)), 0)

		So(result, ShouldBeNil)
		So(err, ShouldResemble, capmon.ForecastError{Series: "cpu", Err: errBadHorizon})
	})

	Convey("Given misaligned series", t, func() {
		forecaster := newTestForecaster(&linearModel{})

		result, err := forecaster.Forecast(capmon.MetricSeries{Name: "cpu", Timestamps: []int64{1}, Values: []float64{1, 2}}, time.Hour)

		So(result, ShouldBeNil)
		So(err, ShouldHaveSameTypeAs, capmon.ForecastError{})
	})

	Convey("Given model which fails to fit", t, func() {
		fitErr := errors.New("singular matrix")
		forecaster := newTestForecaster(&linearModel{fitErr: fitErr})

		result, err := forecaster.Forecast(hourlySeries("cpu", start, linearValues(48)), time.Hour)

		So(result, ShouldBeNil)
		So(err, ShouldHaveSameTypeAs, capmon.ForecastError{})
		So(errors.Is(err, fitErr), ShouldBeTrue)
	})

	Convey("Given model which returns less points", t, func() {
		forecaster := newTestForecaster(&linearModel{shortBy: 1})

		result, err := forecaster.Forecast(hourlySeries("cpu", start, linearValues(48)), 5*time.Hour)

		So(result, ShouldBeNil)
		So(err.Error(), ShouldEqual, "failed to forecast cpu: model returned 4 points instead of 5")
	})
}

func TestForecastWithLibrary(t *testing.T) {
	Convey("Given a week of hourly seasonal data", t, func() {
		logger, _ := logging.GetLogger("Test")
		forecaster := NewForecaster(logger)

		var start int64 = 1595808000
		values := make([]float64, 0, 7*24)
		for i := 0; i < 7*24; i++ {
			values = append(values, 100+10*math.Sin(2*math.Pi*float64(i)/24))
		}
		series := hourlySeries("api-latency", start, values)

		result, err := forecaster.Forecast(series, 7*24*time.Hour)

		So(err, ShouldBeNil)
		So(result.Predicted.Timestamps, ShouldHaveLength, 7*24)
		So(result.Predicted.Values, ShouldHaveLength, 7*24)
		So(result.Predicted.Timestamps[0], ShouldEqual, series.Timestamps[len(series.Timestamps)-1]+3600)
		if result.Bounds != nil {
			So(result.Bounds.Lower, ShouldHaveLength, 7*24)
			So(result.Bounds.Upper, ShouldHaveLength, 7*24)
		}
	})
}

func TestFutureTimestamps(t *testing.T) {
	Convey("Future timestamps start one step after the last one", t, func() {
		So(futureTimestamps(100, time.Minute, 3*time.Minute), ShouldResemble, []int64{160, 220, 280})
		So(futureTimestamps(100, time.Minute, 61*time.Second), ShouldResemble, []int64{160, 220})
	})

	Convey("Predictions count does not overflow near max duration", t, func() {
		So(predictionsCount(time.Hour, time.Duration(math.MaxInt64)), ShouldBeGreaterThan, MaxPredictions)
		So(predictionsCount(time.Hour, 7*24*time.Hour), ShouldEqual, 7*24)
	})
}
