package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/capmon/capmon"
	logging "github.com/capmon/capmon/logging/zerolog_adapter"
	"github.com/capmon/capmon/metrics"
	mock_capmon "github.com/capmon/capmon/mock/capmon"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"
)

func TestBuildReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, _ := logging.GetLogger("Test")
	forecaster := mock_capmon.NewMockForecaster(ctrl)

	var monday int64 = 1595808000
	first := capmon.MetricSeries{Name: "first"}
	second := capmon.MetricSeries{Name: "second"}
	firstResult := &capmon.ForecastResult{
		Observed:  first,
		Predicted: capmon.MetricSeries{Name: "first", Timestamps: []int64{monday}, Values: []float64{2}},
	}
	secondResult := &capmon.ForecastResult{
		Observed:  second,
		Predicted: capmon.MetricSeries{Name: "second", Timestamps: []int64{monday}, Values: []float64{4}},
	}
	forecastErr := capmon.ForecastError{Series: "second", Err: errors.New("too short")}

	Convey("Every series is forecasted independently", t, func() {
		forecaster.EXPECT().Forecast(first, time.Hour).Return(firstResult, nil)
		forecaster.EXPECT().Forecast(second, time.Hour).Return(secondResult, nil)

		report, err := BuildReport(forecaster, logger, "prom", "up", []capmon.MetricSeries{first, second}, time.Hour)

		So(err, ShouldBeNil)
		So(report.Datasource, ShouldEqual, "prom")
		So(report.Query, ShouldEqual, "up")
		So(report.Forecasts, ShouldResemble, []capmon.ForecastResult{*firstResult, *secondResult})
		So(report.WeeklyTrend, ShouldResemble, capmon.TrendProfile{Labels: []string{"Monday"}, Values: []float64{3}})
		So(report.DailyTrend, ShouldResemble, capmon.TrendProfile{Labels: []string{"00:00"}, Values: []float64{3}})
	})

	Convey("Failed series is skipped", t, func() {
		forecaster.EXPECT().Forecast(first, time.Hour).Return(firstResult, nil)
		forecaster.EXPECT().Forecast(second, time.Hour).Return(nil, forecastErr)

		report, err := BuildReport(forecaster, logger, "prom", "up", []capmon.MetricSeries{first, second}, time.Hour)

		So(err, ShouldBeNil)
		So(report.Forecasts, ShouldHaveLength, 1)
	})

	Convey("When every series fails the first error is returned", t, func() {
		forecaster.EXPECT().Forecast(second, time.Hour).Return(nil, forecastErr)

		report, err := BuildReport(forecaster, logger, "prom", "up", []capmon.MetricSeries{second}, time.Hour)

		So(report, ShouldBeNil)
		So(err, ShouldResemble, forecastErr)
	})

	Convey("Without series there is nothing to forecast", t, func() {
		report, err := BuildReport(forecaster, logger, "prom", "up", nil, time.Hour)

		So(report, ShouldBeNil)
		So(err, ShouldHaveSameTypeAs, capmon.ForecastError{})
	})

	Convey("Unexpected error stops report", t, func() {
		unexpected := errors.New("unexpected")
		forecaster.EXPECT().Forecast(first, time.Hour).Return(nil, unexpected)

		report, err := BuildReport(forecaster, logger, "prom", "up", []capmon.MetricSeries{first, second}, time.Hour)

		So(report, ShouldBeNil)
		So(err, ShouldEqual, unexpected)
	})
}

func TestInstrument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Instrumented forecaster counts outcomes", t, func() {
		registry := prometheus.NewRegistry()
		forecastMetrics := metrics.NewForecastMetrics(registry)
		forecaster := mock_capmon.NewMockForecaster(ctrl)
		instrumented := Instrument(forecaster, forecastMetrics)

		forecaster.EXPECT().Forecast(gomock.Any(), time.Hour).Return(&capmon.ForecastResult{}, nil)
		forecaster.EXPECT().Forecast(gomock.Any(), time.Hour).Return(nil, capmon.ForecastError{Series: "a", Err: errors.New("e")})

		_, err := instrumented.Forecast(capmon.MetricSeries{}, time.Hour)
		So(err, ShouldBeNil)
		_, err = instrumented.Forecast(capmon.MetricSeries{}, time.Hour)
		So(err, ShouldNotBeNil)

		count, err := testutil.GatherAndCount(registry, "capmon_forecast_runs_total")
		So(err, ShouldBeNil)
		So(count, ShouldEqual, 2)
	})

	Convey("Without metrics forecaster is returned as is", t, func() {
		forecaster := mock_capmon.NewMockForecaster(ctrl)
		So(Instrument(forecaster, nil), ShouldEqual, forecaster)
	})
}
