package metricSource

import (
	"context"
	"time"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/metrics"
)

type instrumentedSource struct {
	MetricSource
	datasource string
	metrics    *metrics.DatasourceMetrics
}

// Instrument wraps metric source to count fetches and measure their duration
func Instrument(datasource string, source MetricSource, datasourceMetrics *metrics.DatasourceMetrics) MetricSource {
	if datasourceMetrics == nil {
		return source
	}
	return &instrumentedSource{
		MetricSource: source,
		datasource:   datasource,
		metrics:      datasourceMetrics,
	}
}

// InstrumentFactory wraps every metric source created by factory
func InstrumentFactory(factory Factory, datasourceMetrics *metrics.DatasourceMetrics) Factory {
	return func(datasource capmon.DatasourceConfig) (MetricSource, error) {
		source, err := factory(datasource)
		if err != nil {
			return nil, err
		}
		return Instrument(datasource.Name, source, datasourceMetrics), nil
	}
}

func (source *instrumentedSource) Fetch(ctx context.Context, query string, timeRange capmon.TimeRange) ([]capmon.MetricSeries, error) {
	started := time.Now()
	series, err := source.MetricSource.Fetch(ctx, query, timeRange)
	source.metrics.ObserveFetch(source.datasource, time.Since(started), err)
	return series, err
}
