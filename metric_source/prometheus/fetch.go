package prometheus

import (
	"context"
	"time"

	"github.com/capmon/capmon"
	metricSource "github.com/capmon/capmon/metric_source"

	promApi "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// Fetch makes single query_range request and converts every returned stream to series
func (prometheus *Prometheus) Fetch(ctx context.Context, query string, timeRange capmon.TimeRange) ([]capmon.MetricSeries, error) {
	series, err := prometheus.fetch(ctx, query, timeRange, prometheus.config.Timeout)
	if err != nil {
		prometheus.logger.Warning().
			Error(err).
			String("query", query).
			Msg("Failed to fetch prometheus query")
		return nil, err
	}
	if len(series) == 0 {
		return nil, prometheus.newQueryError(query, "%w", metricSource.ErrNoResults)
	}
	return series, nil
}

func (prometheus *Prometheus) fetch(ctx context.Context, query string, timeRange capmon.TimeRange, timeout time.Duration) ([]capmon.MetricSeries, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	val, warns, err := prometheus.api.QueryRange(ctx, query, promApi.Range{
		Start: time.Unix(timeRange.From, 0),
		End:   time.Unix(timeRange.Until, 0),
		Step:  timeRange.GetStep(),
	})

	if len(warns) != 0 {
		prometheus.logger.
			Warning().
			Interface("warns", warns).
			String("query", query).
			Msg("Warnings when fetching metrics from prometheus")
	}

	if err != nil {
		return nil, prometheus.wrapError(query, err)
	}

	mat, ok := val.(model.Matrix)
	if !ok {
		return nil, prometheus.newQueryError(query, "unexpected result type %s", val.Type())
	}

	return convertToSeries(mat), nil
}
