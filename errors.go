package capmon

import "fmt"

// ConfigError means that configuration is missing or malformed and capmon can't start
type ConfigError struct {
	Source string
	Err    error
}

// NewConfigError wraps given error into ConfigError
func NewConfigError(source string, err error) ConfigError {
	return ConfigError{Source: source, Err: err}
}

func (err ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", err.Source, err.Err.Error())
}

func (err ConfigError) Unwrap() error {
	return err.Err
}

// DatasourceUnavailable means that datasource could not be reached
type DatasourceUnavailable struct {
	Datasource string
	Query      string
	Err        error
}

func (err DatasourceUnavailable) Error() string {
	return fmt.Sprintf("datasource %s is unavailable: %s", err.Datasource, err.Err.Error())
}

func (err DatasourceUnavailable) Unwrap() error {
	return err.Err
}

// QueryError means that datasource answered, but the answer is an error or can't be parsed
type QueryError struct {
	Datasource string
	Query      string
	Err        error
}

func (err QueryError) Error() string {
	return fmt.Sprintf("query %q to %s failed: %s", err.Query, err.Datasource, err.Err.Error())
}

func (err QueryError) Unwrap() error {
	return err.Err
}

// ForecastError means that forecast can't be built for the series
type ForecastError struct {
	Series string
	Err    error
}

func (err ForecastError) Error() string {
	return fmt.Sprintf("failed to forecast %s: %s", err.Series, err.Err.Error())
}

func (err ForecastError) Unwrap() error {
	return err.Err
}
