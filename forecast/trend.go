package forecast

import (
	"fmt"
	"time"

	"github.com/capmon/capmon"
)

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// WeeklyTrend averages predicted values of every forecast per weekday, Monday first.
// Weekdays without predicted points are omitted.
func WeeklyTrend(forecasts []capmon.ForecastResult) capmon.TrendProfile {
	labels := make([]string, 0, len(weekdays))
	for _, day := range weekdays {
		labels = append(labels, day.String())
	}
	return buildTrend(forecasts, labels, func(t time.Time) int {
		return (int(t.Weekday()) + 6) % 7
	})
}

// DailyTrend averages predicted values of every forecast per hour of day
func DailyTrend(forecasts []capmon.ForecastResult) capmon.TrendProfile {
	labels := make([]string, 0, 24)
	for hour := 0; hour < 24; hour++ {
		labels = append(labels, fmt.Sprintf("%02d:00", hour))
	}
	return buildTrend(forecasts, labels, func(t time.Time) int {
		return t.Hour()
	})
}

func buildTrend(forecasts []capmon.ForecastResult, labels []string, bucket func(time.Time) int) capmon.TrendProfile {
	sums := make([]float64, len(labels))
	counts := make([]int, len(labels))

	for _, forecast := range forecasts {
		for i, timestamp := range forecast.Predicted.Timestamps {
			index := bucket(capmon.Int64ToTime(timestamp))
			sums[index] += forecast.Predicted.Values[i]
			counts[index]++
		}
	}

	profile := capmon.TrendProfile{
		Labels: make([]string, 0, len(labels)),
		Values: make([]float64, 0, len(labels)),
	}
	for i, label := range labels {
		if counts[i] == 0 {
			continue
		}
		profile.Labels = append(profile.Labels, label)
		profile.Values = append(profile.Values, sums[i]/float64(counts[i]))
	}
	return profile
}
