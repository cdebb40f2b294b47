package remote

import (
	"errors"
	"net/url"
	"time"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/metric_source/retries"
)

const defaultHealthcheckTimeout = 5 * time.Second

// Config represents config of single graphite datasource.
type Config struct {
	Name               string
	URL                string
	Timeout            time.Duration
	User               string
	Password           string
	HealthcheckTimeout time.Duration
	HealthcheckRetries retries.Config
}

var (
	errBadRemoteUrl         = errors.New("remote graphite URL should not be empty")
	errNoTimeout            = errors.New("timeout must be specified and can't be 0")
	errNoHealthcheckTimeout = errors.New("healthcheck_timeout must be specified and can't be 0")
)

// ConfigFromDatasource builds graphite config, credentials are taken from url userinfo.
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

func (conf Config) validate() error {
	resErrors := make([]error, 0)

	if conf.URL == "" {
		resErrors = append(resErrors, errBadRemoteUrl)
	}

	if conf.Timeout == 0 {
		resErrors = append(resErrors, errNoTimeout)
	}

	if conf.HealthcheckTimeout == 0 {
		resErrors = append(resErrors, errNoHealthcheckTimeout)
	}

	if errHealthcheckRetriesValidate := conf.HealthcheckRetries.Validate(); errHealthcheckRetriesValidate != nil {
		resErrors = append(resErrors, errHealthcheckRetriesValidate)
	}

	return errors.Join(resErrors...)
}
