package remote

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/capmon/capmon"
	metricSource "github.com/capmon/capmon/metric_source"
	"github.com/capmon/capmon/metric_source/retries"

	"github.com/cenkalti/backoff/v4"
)

// Remote is implementation of MetricSource interface for graphite render api.
type Remote struct {
	config             *Config
	client             *http.Client
	logger             capmon.Logger
	retrier            retries.Retrier[[]byte]
	healthcheckBackoff retries.BackoffFactory
}

// NewFactory returns metric source factory for graphite datasources.
func NewFactory(timeout time.Duration, logger capmon.Logger) metricSource.Factory {
	return func(datasource capmon.DatasourceConfig) (metricSource.MetricSource, error) {
		config, err := ConfigFromDatasource(datasource, timeout)
		if err != nil {
			return nil, err
		}
		return Create(config, logger)
	}
}

// Create configures graphite metric source.
func Create(config *Config, logger capmon.Logger) (metricSource.MetricSource, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Remote{
		config:             config,
		client:             &http.Client{},
		logger:             logger.Clone().String("datasource", config.Name),
		retrier:            retries.NewStandardRetrier[[]byte](),
		healthcheckBackoff: retries.Exponential(config.HealthcheckRetries),
	}, nil
}

// Fetch requests hourly summarized query from graphite and converts every returned target to series.
func (remote *Remote) Fetch(ctx context.Context, query string, timeRange capmon.TimeRange) ([]capmon.MetricSeries, error) {
	req, err := remote.prepareRequest(ctx, timeRange.From, timeRange.Until, summarizeTarget(query, timeRange.GetStep()))
	if err != nil {
		return nil, capmon.QueryError{Datasource: remote.config.Name, Query: query, Err: err}
	}

	body, err := remote.makeRequest(req, remote.config.Timeout)
	if err != nil {
		remote.logger.Warning().
			Error(err).
			String("query", query).
			Msg("Failed to fetch graphite query")
		return nil, remote.internalErrToPublicErr(err, query)
	}

	series, err := decodeBody(body)
	if err != nil {
		return nil, capmon.QueryError{Datasource: remote.config.Name, Query: query, Err: err}
	}

	if len(series) == 0 {
		return nil, capmon.QueryError{Datasource: remote.config.Name, Query: query, Err: metricSource.ErrNoResults}
	}

	return series, nil
}

// IsAvailable checks that graphite render api answers with anything but unavailable status codes.
func (remote *Remote) IsAvailable(ctx context.Context) (bool, error) {
	until := time.Now().Unix()
	from := until - 600 //nolint

	req, err := remote.prepareRequest(ctx, from, until, "NonExistingTarget")
	if err != nil {
		return false, err
	}

	op := retries.OperationFunc[[]byte](func() ([]byte, error) {
		body, err := remote.makeRequest(req, remote.config.HealthcheckTimeout)
		if err != nil && !isRemoteUnavailable(err) {
			return body, backoff.Permanent(err)
		}
		return body, err
	})

	_, err = remote.retrier.Retry(ctx, op, remote.healthcheckBackoff())
	if err == nil {
		return true, nil
	}

	if isRemoteUnavailable(err) {
		return false, remote.internalErrToPublicErr(err, "")
	}

	// Graphite may reject the probe target, but then it still answers.
	return true, nil
}

func (remote *Remote) internalErrToPublicErr(err error, query string) error {
	if isRemoteUnavailable(err) {
		return capmon.DatasourceUnavailable{Datasource: remote.config.Name, Query: query, Err: err}
	}
	return capmon.QueryError{Datasource: remote.config.Name, Query: query, Err: err}
}

func isRemoteUnavailable(err error) bool {
	var unavailable errRemoteUnavailable
	return errors.As(err, &unavailable)
}
