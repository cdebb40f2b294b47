package prometheus

import (
	"sort"
	"strings"

	"github.com/capmon/capmon"
	"github.com/prometheus/common/model"
)

func convertToSeries(mat model.Matrix) []capmon.MetricSeries {
	result := make([]capmon.MetricSeries, 0, len(mat))

	for _, res := range mat {
		series := capmon.MetricSeries{
			Name:       targetFromTags(res.Metric),
			Timestamps: make([]int64, 0, len(res.Values)),
			Values:     make([]float64, 0, len(res.Values)),
		}
		for _, v := range res.Values {
			series.Timestamps = append(series.Timestamps, v.Timestamp.Unix())
			series.Values = append(series.Values, float64(v.Value))
		}
		result = append(result, series)
	}

	return result
}

func targetFromTags(tags model.Metric) string {
	target := strings.Builder{}
	if name, ok := tags[model.MetricNameLabel]; ok {
		target.WriteString(string(name))
	}

	tagsList := make([]struct{ key, value string }, 0, len(tags))
	for key, value := range tags {
		tagsList = append(tagsList, struct{ key, value string }{string(key), string(value)})
	}

	sort.Slice(tagsList, func(i, j int) bool {
		a, b := tagsList[i], tagsList[j]
		if a.key != b.key {
			return a.key < b.key
		}

		return a.value < b.value
	})

	for _, tag := range tagsList {
		if tag.key == model.MetricNameLabel {
			continue
		}
		if target.Len() != 0 {
			target.WriteRune(';')
		}
		target.WriteString(tag.key)
		target.WriteRune('=')
		target.WriteString(tag.value)
	}

	return target.String()
}
