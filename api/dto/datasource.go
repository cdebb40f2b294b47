package dto

import (
	"net/http"

	"github.com/capmon/capmon"
)

type Datasource struct {
	Name  string                `json:"name" example:"prometheus-main"`
	Type  capmon.DatasourceType `json:"type" example:"prometheus"`
	Label string                `json:"label" example:"prometheus-main [prometheus]"`
}

type DatasourceList struct {
	List []Datasource `json:"list"`
}

func (*DatasourceList) Render(http.ResponseWriter, *http.Request) error {
	return nil
}

// CreateDatasourceList keeps configuration order of datasources
func CreateDatasourceList(datasources []capmon.DatasourceConfig) *DatasourceList {
	list := &DatasourceList{List: make([]Datasource, 0, len(datasources))}
	for _, datasource := range datasources {
		list.List = append(list.List, Datasource{
			Name:  datasource.Name,
			Type:  datasource.Type,
			Label: datasource.Label(),
		})
	}
	return list
}
