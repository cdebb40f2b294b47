package controller

import (
	"context"

	"github.com/capmon/capmon/api/dto"
	metricSource "github.com/capmon/capmon/metric_source"
	"golang.org/x/sync/errgroup"
)

// GetHealth probes every configured datasource concurrently
func GetHealth(ctx context.Context, sourceProvider *metricSource.SourceProvider) *dto.HealthReport {
	datasources := sourceProvider.GetDatasources()
	report := &dto.HealthReport{
		Status: dto.HealthStatusOK,
		List:   make([]dto.DatasourceHealth, len(datasources)),
	}

	group := errgroup.Group{}
	for i, datasource := range datasources {
		report.List[i] = dto.DatasourceHealth{Name: datasource.Name, Type: datasource.Type}
		health := &report.List[i]
		name := datasource.Name

		group.Go(func() error {
			source, err := sourceProvider.GetMetricSource(name)
			if err != nil {
				health.Error = err.Error()
				return nil
			}
			available, err := source.IsAvailable(ctx)
			health.Available = available
			if err != nil {
				health.Error = err.Error()
			}
			return nil
		})
	}
	group.Wait() //nolint

	for _, health := range report.List {
		if !health.Available {
			report.Status = dto.HealthStatusDegraded
			break
		}
	}
	return report
}
