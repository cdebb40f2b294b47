package controller

import (
	"github.com/capmon/capmon"
	metricSource "github.com/capmon/capmon/metric_source"
	. "github.com/smartystreets/goconvey/convey"
)

var testDatasources = []capmon.DatasourceConfig{
	{Name: "prom", Source: "http://prometheus:9090", Type: capmon.Prometheus},
	{Name: "graphite", Source: "http://graphite", Type: capmon.Graphite},
}

// createTestProvider creates provider which answers with given source for every datasource type
func createTestProvider(sources map[capmon.DatasourceType]metricSource.MetricSource) *metricSource.SourceProvider {
	factories := make(map[capmon.DatasourceType]metricSource.Factory, len(sources))
	for sourceType, source := range sources {
		source := source
		factories[sourceType] = func(capmon.DatasourceConfig) (metricSource.MetricSource, error) {
			return source, nil
		}
	}

	datasources := make([]capmon.DatasourceConfig, 0, len(testDatasources))
	for _, datasource := range testDatasources {
		if _, ok := sources[datasource.Type]; ok {
			datasources = append(datasources, datasource)
		}
	}

	provider, err := metricSource.CreateMetricSourceProvider(datasources, factories)
	So(err, ShouldBeNil)
	return provider
}

// createHourlyReport creates report with one observed and predicted day of hourly points
func createHourlyReport() *capmon.ForecastReport {
	var monday int64 = 1595808000
	observed := capmon.MetricSeries{Name: "cpu"}
	predicted := capmon.MetricSeries{Name: "cpu"}
	for i := int64(0); i < 24; i++ {
		observed.Timestamps = append(observed.Timestamps, monday+i*3600)
		observed.Values = append(observed.Values, float64(i))
		predicted.Timestamps = append(predicted.Timestamps, monday+(24+i)*3600)
		predicted.Values = append(predicted.Values, float64(24+i))
	}
	forecasts := []capmon.ForecastResult{{Observed: observed, Predicted: predicted}}
	return &capmon.ForecastReport{
		Datasource:  "prom",
		Query:       "cpu",
		Forecasts:   forecasts,
		WeeklyTrend: capmon.TrendProfile{Labels: []string{"Monday", "Tuesday"}, Values: []float64{11.5, 35.5}},
		DailyTrend:  capmon.TrendProfile{Labels: []string{"00:00", "01:00"}, Values: []float64{24, 25}},
	}
}
