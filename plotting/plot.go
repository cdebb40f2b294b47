package plotting

import (
	"fmt"
	"io"

	"github.com/capmon/capmon"
	"github.com/moira-alert/go-chart"
)

const maxTitleLength = 60

// ErrNoPointsToRender is used to prevent rendering charts without any values
type ErrNoPointsToRender struct {
	title string
}

// Error is an error interface implementation method
func (err ErrNoPointsToRender) Error() string {
	return fmt.Sprintf("no points found to render %s", err.title)
}

// Plot represents plot structure to render
type Plot struct {
	theme  PlotTheme
	width  int
	height int
}

// GetPlotTemplate returns plot template
func GetPlotTemplate(theme string) (*Plot, error) {
	plotTheme, err := getPlotTheme(theme)
	if err != nil {
		return nil, err
	}
	return &Plot{
		theme:  plotTheme,
		width:  800, //nolint
		height: 400, //nolint
	}, nil
}

// GetForecastRenderable returns chart of observed curves followed by predicted curves and their bounds
func (plot *Plot) GetForecastRenderable(title string, forecasts []capmon.ForecastResult) (chart.Chart, error) {
	if !hasPoints(forecasts) {
		return chart.Chart{}, ErrNoPointsToRender{title: title}
	}

	plotLimits := resolveLimits(forecasts)
	yAxisValuesFormatter, maxMarkLen := getYAxisValuesFormatter(plotLimits)
	gridStyle := plot.theme.GetGridStyle()

	renderable := chart.Chart{
		Title:      sanitizeLabelName(title, maxTitleLength),
		TitleStyle: plot.theme.GetTitleStyle(),

		Width:  plot.width,
		Height: plot.height,

		Canvas:     plot.theme.GetCanvasStyle(),
		Background: plot.theme.GetBackgroundStyle(maxMarkLen),

		XAxis: chart.XAxis{
			Style:          plot.theme.GetXAxisStyle(),
			GridMinorStyle: gridStyle,
			GridMajorStyle: gridStyle,
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02 15:04"),
		},

		YAxis: hiddenYAxis(plotLimits),

		YAxisSecondary: chart.YAxis{
			ValueFormatter: yAxisValuesFormatter,
			Style:          plot.theme.GetYAxisStyle(),
			GridMinorStyle: gridStyle,
			GridMajorStyle: gridStyle,
			Range: &chart.ContinuousRange{
				Max: plotLimits.highest,
				Min: plotLimits.lowest,
			},
		},

		Series: getCurveSeriesList(forecasts, plot.theme),
	}

	renderable.Elements = []chart.Renderable{
		getPlotLegend(&renderable, plot.theme.GetLegendStyle(), plot.width),
	}

	return renderable, nil
}

// GetTrendRenderable returns chart of trend profile, one labeled tick per bucket
func (plot *Plot) GetTrendRenderable(title string, profile capmon.TrendProfile) (chart.Chart, error) {
	if len(profile.Values) == 0 {
		return chart.Chart{}, ErrNoPointsToRender{title: title}
	}

	xValues := make([]float64, 0, len(profile.Values))
	ticks := make([]chart.Tick, 0, len(profile.Labels))
	for i, label := range profile.Labels {
		xValues = append(xValues, float64(i))
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}

	plotLimits := resolveLimits([]capmon.ForecastResult{{Predicted: capmon.MetricSeries{Values: profile.Values}}})
	yAxisValuesFormatter, maxMarkLen := getYAxisValuesFormatter(plotLimits)
	gridStyle := plot.theme.GetGridStyle()

	xRange := &chart.ContinuousRange{Min: -0.5, Max: float64(len(xValues)) - 0.5} //nolint

	return chart.Chart{
		Title:      sanitizeLabelName(title, maxTitleLength),
		TitleStyle: plot.theme.GetTitleStyle(),

		Width:  plot.width,
		Height: plot.height,

		Canvas:     plot.theme.GetCanvasStyle(),
		Background: plot.theme.GetBackgroundStyle(maxMarkLen),

		XAxis: chart.XAxis{
			Style:          plot.theme.GetXAxisStyle(),
			GridMajorStyle: gridStyle,
			Ticks:          ticks,
			Range:          xRange,
		},

		YAxis: hiddenYAxis(plotLimits),

		YAxisSecondary: chart.YAxis{
			ValueFormatter: yAxisValuesFormatter,
			Style:          plot.theme.GetYAxisStyle(),
			GridMinorStyle: gridStyle,
			GridMajorStyle: gridStyle,
			Range: &chart.ContinuousRange{
				Max: plotLimits.highest,
				Min: plotLimits.lowest,
			},
		},

		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				YAxis:   chart.YAxisSecondary,
				Style:   plot.theme.GetTrendStyle(),
				XValues: xValues,
				YValues: profile.Values,
			},
		},
	}, nil
}

// hiddenYAxis mirrors secondary axis range, every series is drawn on secondary axis
func hiddenYAxis(limits plotLimits) chart.YAxis {
	return chart.YAxis{
		Style: chart.Style{Show: false},
		Range: &chart.ContinuousRange{
			Max: limits.highest,
			Min: limits.lowest,
		},
	}
}

// RenderPNG writes chart as png image
func RenderPNG(renderable chart.Chart, w io.Writer) error {
	return renderable.Render(chart.PNG, w)
}
