package metricSource

import (
	"context"
	"errors"

	"github.com/capmon/capmon"
)

// MetricSource implements datasource abstraction, one implementation per datasource type
type MetricSource interface {
	// Fetch makes exactly one request to datasource and returns every series it answered with
	Fetch(ctx context.Context, query string, timeRange capmon.TimeRange) ([]capmon.MetricSeries, error)
	// IsAvailable checks that datasource answers requests
	IsAvailable(ctx context.Context) (bool, error)
}

// ErrNoResults is returned inside QueryError when datasource answered with no series
var ErrNoResults = errors.New("no results returned")
