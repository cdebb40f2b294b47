package metricSource

import (
	"fmt"

	"github.com/capmon/capmon"
)

// ErrDatasourceNotFound is returned when there is no datasource with requested name
type ErrDatasourceNotFound struct {
	Name string
}

func (err ErrDatasourceNotFound) Error() string {
	return fmt.Sprintf("datasource %q is not configured", err.Name)
}

// Factory creates metric source for given datasource
type Factory func(datasource capmon.DatasourceConfig) (MetricSource, error)

// SourceProvider is a provider for all configured datasources
type SourceProvider struct {
	datasources []capmon.DatasourceConfig
	sources     map[string]MetricSource
}

// CreateMetricSourceProvider creates metric source for every datasource using factory registered for its type
func CreateMetricSourceProvider(datasources []capmon.DatasourceConfig, factories map[capmon.DatasourceType]Factory) (*SourceProvider, error) {
	provider := &SourceProvider{
		datasources: make([]capmon.DatasourceConfig, 0, len(datasources)),
		sources:     make(map[string]MetricSource, len(datasources)),
	}

	for _, datasource := range datasources {
		if _, ok := provider.sources[datasource.Name]; ok {
			return nil, capmon.NewConfigError(datasource.Name, fmt.Errorf("repeated datasource name"))
		}

		factory, ok := factories[datasource.Type]
		if !ok {
			return nil, capmon.NewConfigError(datasource.Name, fmt.Errorf("invalid source type %q", datasource.Type))
		}

		source, err := factory(datasource)
		if err != nil {
			return nil, capmon.NewConfigError(datasource.Name, err)
		}

		provider.datasources = append(provider.datasources, datasource)
		provider.sources[datasource.Name] = source
	}

	return provider, nil
}

// GetDatasources returns datasources in configuration order
func (provider *SourceProvider) GetDatasources() []capmon.DatasourceConfig {
	result := make([]capmon.DatasourceConfig, len(provider.datasources))
	copy(result, provider.datasources)
	return result
}

// GetMetricSource returns metric source for datasource with given name
func (provider *SourceProvider) GetMetricSource(name string) (MetricSource, error) {
	source, ok := provider.sources[name]
	if !ok {
		return nil, ErrDatasourceNotFound{Name: name}
	}
	return source, nil
}
