package cmd

import (
	"time"

	"github.com/capmon/capmon"
	metricSource "github.com/capmon/capmon/metric_source"
	"github.com/capmon/capmon/metric_source/prometheus"
	"github.com/capmon/capmon/metric_source/remote"
	"github.com/capmon/capmon/metrics"
)

// InitMetricSources initializes SourceProvider from given datasources, every source is instrumented
func InitMetricSources(
	datasources []capmon.DatasourceConfig,
	timeout time.Duration,
	logger capmon.Logger,
	datasourceMetrics *metrics.DatasourceMetrics,
) (*metricSource.SourceProvider, error) {
	factories := map[capmon.DatasourceType]metricSource.Factory{
		capmon.Prometheus: metricSource.InstrumentFactory(prometheus.NewFactory(timeout, logger), datasourceMetrics),
		capmon.Graphite:   metricSource.InstrumentFactory(remote.NewFactory(timeout, logger), datasourceMetrics),
	}
	return metricSource.CreateMetricSourceProvider(datasources, factories)
}
