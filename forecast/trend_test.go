package forecast

import (
	"testing"

	"github.com/capmon/capmon"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTrends(t *testing.T) {
	var monday int64 = 1595808000 // 2020-07-27 00:00:00 UTC

	Convey("Given forecasts over two days", t, func() {
		forecasts := []capmon.ForecastResult{
			{Predicted: capmon.MetricSeries{
				Timestamps: []int64{monday, monday + 3600, monday + 86400},
				Values:     []float64{1, 3, 10},
			}},
			{Predicted: capmon.MetricSeries{
				Timestamps: []int64{monday},
				Values:     []float64{5},
			}},
		}

		Convey("weekly trend has only covered weekdays", func() {
			So(WeeklyTrend(forecasts), ShouldResemble, capmon.TrendProfile{
				Labels: []string{"Monday", "Tuesday"},
				Values: []float64{3, 10},
			})
		})

		Convey("daily trend averages per hour", func() {
			So(DailyTrend(forecasts), ShouldResemble, capmon.TrendProfile{
				Labels: []string{"00:00", "01:00"},
				Values: []float64{16.0 / 3, 3},
			})
		})
	})

	Convey("Sunday goes last", t, func() {
		sunday := monday - 86400
		forecasts := []capmon.ForecastResult{{Predicted: capmon.MetricSeries{
			Timestamps: []int64{sunday, monday},
			Values:     []float64{7, 1},
		}}}

		So(WeeklyTrend(forecasts).Labels, ShouldResemble, []string{"Monday", "Sunday"})
	})

	Convey("Empty forecasts give empty profiles", t, func() {
		So(WeeklyTrend(nil).Labels, ShouldBeEmpty)
		So(DailyTrend(nil).Values, ShouldBeEmpty)
	})
}
