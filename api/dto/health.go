package dto

import (
	"net/http"

	"github.com/capmon/capmon"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

type DatasourceHealth struct {
	Name      string                `json:"name" example:"prometheus-main"`
	Type      capmon.DatasourceType `json:"type" example:"prometheus"`
	Available bool                  `json:"available" example:"true"`
	Error     string                `json:"error,omitempty"`
}

type HealthReport struct {
	Status string             `json:"status" example:"ok"`
	List   []DatasourceHealth `json:"list"`
}

func (*HealthReport) Render(http.ResponseWriter, *http.Request) error {
	return nil
}
