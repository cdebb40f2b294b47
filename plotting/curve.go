package plotting

import (
	"math"
	"time"

	"github.com/capmon/capmon"
	"github.com/moira-alert/go-chart"
)

const (
	predictedSuffix = " (forecast)"
	boundsSerie     = "bounds"
)

// plotCurve is a single continuous curve of a series
type plotCurve struct {
	timeStamps []time.Time
	values     []float64
}

// getCurveSeriesList returns observed, bounds and predicted curves of every forecast, one color per forecast
func getCurveSeriesList(forecasts []capmon.ForecastResult, theme PlotTheme) []chart.Series {
	curveSeriesList := make([]chart.Series, 0)
	for forecastInd, forecast := range forecasts {
		curveStyle, pointStyle := theme.GetSerieStyles(forecastInd)
		for _, curveSerie := range generatePlotCurves(forecast.Observed, forecast.Observed.Name, curveStyle, pointStyle) {
			curveSeriesList = append(curveSeriesList, curveSerie)
		}

		if forecast.Bounds != nil {
			boundsStyle := theme.GetBoundsStyle(forecastInd)
			for _, bound := range [][]float64{forecast.Bounds.Lower, forecast.Bounds.Upper} {
				boundSeries := capmon.MetricSeries{Timestamps: forecast.Predicted.Timestamps, Values: bound}
				for _, curveSerie := range generatePlotCurves(boundSeries, boundsSerie, boundsStyle, boundsStyle) {
					curveSeriesList = append(curveSeriesList, curveSerie)
				}
			}
		}

		predictionStyle := theme.GetPredictionStyle(forecastInd)
		predictedName := forecast.Predicted.Name + predictedSuffix
		for _, curveSerie := range generatePlotCurves(forecast.Predicted, predictedName, predictionStyle, pointStyle) {
			curveSeriesList = append(curveSeriesList, curveSerie)
		}
	}
	return curveSeriesList
}

// generatePlotCurves returns go-chart timeseries to generate plot curves
func generatePlotCurves(series capmon.MetricSeries, name string, curveStyle chart.Style, pointStyle chart.Style) []chart.TimeSeries {
	curves := describePlotCurves(series)
	curveSeries := make([]chart.TimeSeries, 0)
	for _, curve := range curves {
		var serieStyle chart.Style
		switch len(curve.values) {
		case 0:
			continue
		case 1:
			serieStyle = pointStyle
		default:
			serieStyle = curveStyle
		}
		curveSerie := chart.TimeSeries{
			Name:    name,
			YAxis:   chart.YAxisSecondary,
			Style:   serieStyle,
			XValues: curve.timeStamps,
			YValues: curve.values,
		}
		curveSeries = append(curveSeries, curveSerie)
	}
	return curveSeries
}

// describePlotCurves splits series into continuous curves at every NaN value
func describePlotCurves(series capmon.MetricSeries) []plotCurve {
	curves := []plotCurve{{}}
	curvesInd := 0

	for valInd, pointValue := range series.Values {
		if !math.IsNaN(pointValue) {
			timeStampValue := capmon.Int64ToTime(series.Timestamps[valInd])
			curves[curvesInd].timeStamps = append(curves[curvesInd].timeStamps, timeStampValue)
			curves[curvesInd].values = append(curves[curvesInd].values, pointValue)
		} else if len(curves[curvesInd].values) > 0 {
			curves = append(curves, plotCurve{})
			curvesInd++
		}
	}
	return curves
}
