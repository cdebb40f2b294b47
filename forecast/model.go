package forecast

import (
	"time"

	forecaster "github.com/aouyang1/go-forecaster"
)

type prediction struct {
	values []float64
	upper  []float64
	lower  []float64
}

type seriesModel interface {
	Fit(t []time.Time, y []float64) error
	Predict(t []time.Time) (*prediction, error)
}

type modelFactory func() (seriesModel, error)

// forecasterModel adapts go-forecaster to seriesModel
type forecasterModel struct {
	f *forecaster.Forecaster
}

func newForecasterModel() (seriesModel, error) {
	f, err := forecaster.New(nil)
	if err != nil {
		return nil, err
	}
	return &forecasterModel{f: f}, nil
}

func (model *forecasterModel) Fit(t []time.Time, y []float64) error {
	return model.f.Fit(t, y)
}

func (model *forecasterModel) Predict(t []time.Time) (*prediction, error) {
	res, err := model.f.Predict(t)
	if err != nil {
		return nil, err
	}
	return &prediction{
		values: res.Forecast,
		upper:  res.Upper,
		lower:  res.Lower,
	}, nil
}
