package prometheus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/capmon/capmon"
	logging "github.com/capmon/capmon/logging/zerolog_adapter"
	metricSource "github.com/capmon/capmon/metric_source"
	"github.com/capmon/capmon/metric_source/retries"
	mock_capmon "github.com/capmon/capmon/mock/capmon"

	promApi "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"
)

func newTestPrometheus(api PrometheusApi) *Prometheus {
	logger, _ := logging.GetLogger("Test")
	config := &Config{
		Name:               "prom",
		Timeout:            time.Second,
		HealthcheckTimeout: 100 * time.Millisecond,
		HealthcheckRetries: retries.Config{
			InitialInterval: time.Millisecond,
			Multiplier:      2,
			MaxInterval:     time.Millisecond * 5,
			MaxRetriesCount: 2,
		},
	}
	return &Prometheus{
		config:             config,
		api:                api,
		logger:             logger,
		retrier:            retries.NewStandardRetrier[bool](),
		healthcheckBackoff: retries.Exponential(config.HealthcheckRetries),
	}
}

func TestPrometheusFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_capmon.NewMockPrometheusApi(ctrl)
	prometheus := newTestPrometheus(api)

	timeRange := capmon.TimeRange{From: 1595800000, Until: 1595803600}
	query := "rate(http_requests_total[5m])"

	Convey("Given two streams", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), query, promApi.Range{
			Start: time.Unix(timeRange.From, 0),
			End:   time.Unix(timeRange.Until, 0),
			Step:  time.Hour,
		}).Return(
			model.Matrix{
				&model.SampleStream{
					Metric: model.Metric{"__name__": "http_requests_total", "job": "api"},
					Values: []model.SamplePair{
						{Timestamp: model.TimeFromUnix(timeRange.From), Value: 3.14},
						{Timestamp: model.TimeFromUnix(timeRange.Until), Value: 2.71},
					},
				},
				&model.SampleStream{
					Metric: model.Metric{"job": "db", "instance": "a"},
					Values: []model.SamplePair{
						{Timestamp: model.TimeFromUnix(timeRange.From), Value: 1},
					},
				},
			},
			nil,
			nil,
		)

		series, err := prometheus.Fetch(context.Background(), query, timeRange)

		So(err, ShouldBeNil)
		So(series, ShouldResemble, []capmon.MetricSeries{
			{
				Name:       "http_requests_total;job=api",
				Timestamps: []int64{timeRange.From, timeRange.Until},
				Values:     []float64{3.14, 2.71},
			},
			{
				Name:       "instance=a;job=db",
				Timestamps: []int64{timeRange.From},
				Values:     []float64{1},
			},
		})
	})

	Convey("Given empty matrix", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), query, gomock.Any()).Return(model.Matrix{}, promApi.Warnings{"some warning"}, nil)

		series, err := prometheus.Fetch(context.Background(), query, timeRange)

		So(series, ShouldBeNil)
		So(err, ShouldHaveSameTypeAs, capmon.QueryError{})
		So(errors.Is(err, metricSource.ErrNoResults), ShouldBeTrue)
		So(err.Error(), ShouldEqual, `query "rate(http_requests_total[5m])" to prom failed: no results returned`)
	})

	Convey("Given scalar result", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), query, gomock.Any()).Return(&model.Scalar{Value: 1}, nil, nil)

		series, err := prometheus.Fetch(context.Background(), query, timeRange)

		So(series, ShouldBeNil)
		So(err, ShouldHaveSameTypeAs, capmon.QueryError{})
	})

	Convey("Given prometheus api error", t, func() {
		apiErr := &promApi.Error{Type: promApi.ErrBadData, Msg: "parse error"}
		api.EXPECT().QueryRange(gomock.Any(), query, gomock.Any()).Return(nil, nil, apiErr)

		series, err := prometheus.Fetch(context.Background(), query, timeRange)

		So(series, ShouldBeNil)
		So(err, ShouldResemble, capmon.QueryError{Datasource: "prom", Query: query, Err: apiErr})
	})

	Convey("Given connection error", t, func() {
		connErr := errors.New("dial tcp: connection refused")
		api.EXPECT().QueryRange(gomock.Any(), query, gomock.Any()).Return(nil, nil, connErr)

		series, err := prometheus.Fetch(context.Background(), query, timeRange)

		So(series, ShouldBeNil)
		So(err, ShouldResemble, capmon.DatasourceUnavailable{Datasource: "prom", Query: query, Err: connErr})
	})

	Convey("Given custom step", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), query, promApi.Range{
			Start: time.Unix(timeRange.From, 0),
			End:   time.Unix(timeRange.Until, 0),
			Step:  time.Minute,
		}).Return(model.Matrix{
			&model.SampleStream{
				Metric: model.Metric{"__name__": "up"},
				Values: []model.SamplePair{{Timestamp: model.TimeFromUnix(timeRange.From), Value: 1}},
			},
		}, nil, nil)

		series, err := prometheus.Fetch(context.Background(), query, capmon.TimeRange{
			From:  timeRange.From,
			Until: timeRange.Until,
			Step:  time.Minute,
		})

		So(err, ShouldBeNil)
		So(series, ShouldHaveLength, 1)
		So(series[0].Name, ShouldEqual, "up")
	})
}

func TestPrometheusIsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_capmon.NewMockPrometheusApi(ctrl)
	prometheus := newTestPrometheus(api)

	available := model.Matrix{
		&model.SampleStream{
			Metric: model.Metric{},
			Values: []model.SamplePair{{Timestamp: model.Now(), Value: 1}},
		},
	}

	Convey("Given available prometheus", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), "1", gomock.Any()).Return(available, nil, nil)

		ok, err := prometheus.IsAvailable(context.Background())
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})

	Convey("Given prometheus which recovers after failure", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), "1", gomock.Any()).Return(nil, nil, errors.New("connection reset"))
		api.EXPECT().QueryRange(gomock.Any(), "1", gomock.Any()).Return(available, nil, nil)

		ok, err := prometheus.IsAvailable(context.Background())
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})

	Convey("Given prometheus which is always down", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), "1", gomock.Any()).Return(nil, nil, errors.New("connection refused")).Times(3)

		ok, err := prometheus.IsAvailable(context.Background())
		So(err, ShouldHaveSameTypeAs, capmon.DatasourceUnavailable{})
		So(ok, ShouldBeFalse)
	})

	Convey("Every attempt is bounded by healthcheck timeout, not by query timeout", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), "1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ string, _ promApi.Range, _ ...promApi.Option) (model.Value, promApi.Warnings, error) {
				deadline, ok := ctx.Deadline()
				So(ok, ShouldBeTrue)
				So(time.Until(deadline), ShouldBeLessThanOrEqualTo, prometheus.config.HealthcheckTimeout)
				return available, nil, nil
			})

		ok, err := prometheus.IsAvailable(context.Background())
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})

	Convey("Given prometheus api error, it is not retried", t, func() {
		api.EXPECT().QueryRange(gomock.Any(), "1", gomock.Any()).Return(nil, nil, &promApi.Error{Type: promApi.ErrServer, Msg: "server error: 500"})

		ok, err := prometheus.IsAvailable(context.Background())
		So(err, ShouldHaveSameTypeAs, capmon.QueryError{})
		So(ok, ShouldBeFalse)
	})
}
