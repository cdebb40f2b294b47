package remote

import (
	"encoding/json"
	"fmt"

	"github.com/capmon/capmon"
)

type graphiteMetric struct {
	Target     string            `json:"target"`
	Tags       map[string]string `json:"tags"`
	DataPoints [][2]*float64     `json:"datapoints"`
}

func (metric graphiteMetric) name() string {
	if name, ok := metric.Tags["name"]; ok && name != "" {
		return name
	}
	return metric.Target
}

// decodeBody converts graphite json response to series, null points are dropped.
func decodeBody(body []byte) ([]capmon.MetricSeries, error) {
	var tmp []graphiteMetric
	if err := json.Unmarshal(body, &tmp); err != nil {
		return nil, err
	}

	res := make([]capmon.MetricSeries, 0, len(tmp))
	for _, m := range tmp {
		series := capmon.MetricSeries{
			Name:       m.name(),
			Timestamps: make([]int64, 0, len(m.DataPoints)),
			Values:     make([]float64, 0, len(m.DataPoints)),
		}
		for _, point := range m.DataPoints {
			if point[1] == nil {
				return nil, fmt.Errorf("target %s has datapoint without timestamp", m.Target)
			}
			if point[0] == nil {
				continue
			}
			series.Timestamps = append(series.Timestamps, int64(*point[1]))
			series.Values = append(series.Values, *point[0])
		}
		res = append(res, series)
	}

	return res, nil
}
