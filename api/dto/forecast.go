package dto

import (
	"net/http"

	"github.com/capmon/capmon"
)

type ForecastReport struct {
	capmon.ForecastReport
	From    int64 `json:"from" example:"1594471927"`
	Until   int64 `json:"until" example:"1595076727"`
	Horizon int   `json:"horizon_days" example:"7"`
}

func (*ForecastReport) Render(http.ResponseWriter, *http.Request) error {
	return nil
}
