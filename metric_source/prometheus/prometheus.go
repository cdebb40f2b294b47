package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/capmon/capmon"
	metricSource "github.com/capmon/capmon/metric_source"
	"github.com/capmon/capmon/metric_source/retries"

	"github.com/cenkalti/backoff/v4"
	promApi "github.com/prometheus/client_golang/api/prometheus/v1"
)

const defaultHealthcheckTimeout = 5 * time.Second

var errNoHealthcheckTimeout = errors.New("healthcheck_timeout must be specified and can't be 0")

// Config of single prometheus datasource
type Config struct {
	Name               string
	URL                string
	Timeout            time.Duration
	User               string
	Password           string
	HealthcheckTimeout time.Duration
	HealthcheckRetries retries.Config
}

// ConfigFromDatasource builds prometheus config, credentials are taken from url userinfo
func ConfigFromDatasource(datasource capmon.DatasourceConfig, timeout time.Duration) (*Config, error) {
	address, err := url.Parse(datasource.Source)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Name:               datasource.Name,
		Timeout:            timeout,
		HealthcheckTimeout: defaultHealthcheckTimeout,
		HealthcheckRetries: retries.DefaultHealthcheckConfig(),
	}

	if address.User != nil {
		config.User = address.User.Username()
		config.Password, _ = address.User.Password()
		address.User = nil
	}
	config.URL = address.String()

	return config, nil
}

// NewFactory returns metric source factory for prometheus datasources
func NewFactory(timeout time.Duration, logger capmon.Logger) metricSource.Factory {
	return func(datasource capmon.DatasourceConfig) (metricSource.MetricSource, error) {
		config, err := ConfigFromDatasource(datasource, timeout)
		if err != nil {
			return nil, err
		}
		return Create(config, logger)
	}
}

// Create configures prometheus metric source
func Create(config *Config, logger capmon.Logger) (metricSource.MetricSource, error) {
	if config.HealthcheckTimeout <= 0 {
		return nil, errNoHealthcheckTimeout
	}
	if err := config.HealthcheckRetries.Validate(); err != nil {
		return nil, err
	}

	api, err := createPrometheusApi(config)
	if err != nil {
		return nil, err
	}

	return &Prometheus{
		config:             config,
		api:                api,
		logger:             logger.Clone().String("datasource", config.Name),
		retrier:            retries.NewStandardRetrier[bool](),
		healthcheckBackoff: retries.Exponential(config.HealthcheckRetries),
	}, nil
}

// Prometheus is implementation of MetricSource interface for prometheus query_range api
type Prometheus struct {
	config             *Config
	logger             capmon.Logger
	api                PrometheusApi
	retrier            retries.Retrier[bool]
	healthcheckBackoff retries.BackoffFactory
}

// IsAvailable checks that prometheus evaluates a trivial query, every attempt is bounded by HealthcheckTimeout
func (prometheus *Prometheus) IsAvailable(ctx context.Context) (bool, error) {
	now := time.Now().Unix()
	timeRange := capmon.TimeRange{From: now - int64(capmon.DefaultStep.Seconds()), Until: now}

	op := retries.OperationFunc[bool](func() (bool, error) {
		_, err := prometheus.fetch(ctx, "1", timeRange, prometheus.config.HealthcheckTimeout)
		if err == nil {
			return true, nil
		}

		var queryErr capmon.QueryError
		if errors.As(err, &queryErr) {
			return false, backoff.Permanent(err)
		}
		return false, err
	})

	return prometheus.retrier.Retry(ctx, op, prometheus.healthcheckBackoff())
}

func (prometheus *Prometheus) wrapError(query string, err error) error {
	var apiErr *promApi.Error
	if errors.As(err, &apiErr) {
		return capmon.QueryError{Datasource: prometheus.config.Name, Query: query, Err: err}
	}
	return capmon.DatasourceUnavailable{Datasource: prometheus.config.Name, Query: query, Err: err}
}

func (prometheus *Prometheus) newQueryError(query string, format string, args ...interface{}) error {
	return capmon.QueryError{Datasource: prometheus.config.Name, Query: query, Err: fmt.Errorf(format, args...)}
}
