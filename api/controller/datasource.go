package controller

import (
	"github.com/capmon/capmon/api/dto"
	metricSource "github.com/capmon/capmon/metric_source"
)

// GetDatasources returns configured datasources in configuration order
func GetDatasources(sourceProvider *metricSource.SourceProvider) *dto.DatasourceList {
	return dto.CreateDatasourceList(sourceProvider.GetDatasources())
}
