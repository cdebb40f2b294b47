package prometheus

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/prometheus/client_golang/api"
	promApi "github.com/prometheus/client_golang/api/prometheus/v1"
	promConfig "github.com/prometheus/common/config"
	"github.com/prometheus/common/model"
)

// PrometheusApi is the part of prometheus http api used to fetch series
type PrometheusApi interface {
	QueryRange(ctx context.Context, query string, r promApi.Range, opts ...promApi.Option) (model.Value, promApi.Warnings, error)
}

func createPrometheusApi(config *Config) (promApi.API, error) {
	client, err := api.NewClient(api.Config{
		Address:      config.URL,
		RoundTripper: newRoundTripper(config),
	})
	if err != nil {
		return nil, err
	}
	return promApi.NewAPI(client), nil
}

// newRoundTripper adds basic auth when the datasource url carried a user.
// A user with an empty password is still sent.
func newRoundTripper(config *Config) http.RoundTripper {
	if config.User == "" {
		return api.DefaultRoundTripper
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(config.User + ":" + config.Password))
	return promConfig.NewAuthorizationCredentialsRoundTripper("Basic", promConfig.Secret(credentials), api.DefaultRoundTripper)
}
