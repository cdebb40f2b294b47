package themes

import (
	"github.com/golang/freetype/truetype"
	"github.com/moira-alert/go-chart"
	"github.com/moira-alert/go-chart/drawing"
)

var curveColors = []string{
	`89da59`, `90afc5`, `375e97`, `ffbb00`, `5bc8ac`, `4cb5f5`, `6ab187`, `ec96a4`,
	`f0810f`, `f9a603`, `a1be95`, `e2dfa2`, `ebdf00`, `5b7065`, `eb8a3e`, `217ca3`,
}

// PlotTheme is a set of colors and fonts every chart is rendered with
type PlotTheme struct {
	font              *truetype.Font
	fontSizePrimary   float64
	fontSizeSecondary float64
	bgColor           string
	gridColor         string
	trendColor        string
	curveColors       []string
}

// NewDarkTheme returns theme with dark background
func NewDarkTheme(themeFont *truetype.Font) *PlotTheme {
	return &PlotTheme{
		font:              themeFont,
		fontSizePrimary:   10,
		fontSizeSecondary: 8,
		bgColor:           `1f1d1d`,
		gridColor:         `ffffff`,
		trendColor:        `4cb5f5`,
		curveColors:       curveColors,
	}
}

// NewLightTheme returns theme with white background
func NewLightTheme(themeFont *truetype.Font) *PlotTheme {
	return &PlotTheme{
		font:              themeFont,
		fontSizePrimary:   10, //nolint
		fontSizeSecondary: 8,  //nolint
		bgColor:           `ffffff`,
		gridColor:         `1f1d1d`,
		trendColor:        `217ca3`,
		curveColors:       curveColors,
	}
}

// GetTitleStyle returns title style
func (theme *PlotTheme) GetTitleStyle() chart.Style {
	return chart.Style{
		Show:        true,
		Font:        theme.font,
		FontSize:    theme.fontSizePrimary + 2,
		FontColor:   chart.ColorAlternateGray,
		FillColor:   drawing.ColorFromHex(theme.bgColor),
		StrokeColor: drawing.ColorFromHex(theme.bgColor),
	}
}

// GetGridStyle returns grid style
func (theme *PlotTheme) GetGridStyle() chart.Style {
	return chart.Style{
		Show:        true,
		StrokeColor: drawing.ColorFromHex(theme.gridColor),
		StrokeWidth: 0.03, //nolint
	}
}

// GetCanvasStyle returns canvas style
func (theme *PlotTheme) GetCanvasStyle() chart.Style {
	return chart.Style{
		FillColor: drawing.ColorFromHex(theme.bgColor),
	}
}

// GetBackgroundStyle returns background style, right padding leaves room for y axis marks
func (theme *PlotTheme) GetBackgroundStyle(maxMarkLen int) chart.Style {
	verticalShift := 40
	horizontalShift := 20
	if maxMarkLen > 4 { //nolint
		horizontalShift = horizontalShift / 2 //nolint
	}
	return chart.Style{
		FillColor: drawing.ColorFromHex(theme.bgColor),
		Padding: chart.Box{
			Top:    verticalShift,
			Bottom: verticalShift,
			Left:   horizontalShift,
			Right:  horizontalShift + (maxMarkLen * 6), //nolint
		},
	}
}

func (theme *PlotTheme) curveColor(curveInd int) drawing.Color {
	return drawing.ColorFromHex(theme.curveColors[curveInd%len(theme.curveColors)])
}

// GetSerieStyles returns observed curve and single point styles
func (theme *PlotTheme) GetSerieStyles(curveInd int) (chart.Style, chart.Style) {
	curveColor := theme.curveColor(curveInd)
	curveWidth := float64(1)
	curveStyle := chart.Style{
		Show:        true,
		StrokeWidth: curveWidth,
		StrokeColor: curveColor.WithAlpha(90), //nolint
		FillColor:   curveColor.WithAlpha(20), //nolint
	}
	pointStyle := chart.Style{
		Show:        true,
		StrokeWidth: chart.Disabled,
		DotWidth:    curveWidth / 2, //nolint
		DotColor:    curveColor.WithAlpha(90), //nolint
	}
	return curveStyle, pointStyle
}

// GetPredictionStyle returns style of predicted curve
func (theme *PlotTheme) GetPredictionStyle(curveInd int) chart.Style {
	return chart.Style{
		Show:        true,
		StrokeWidth: 2, //nolint
		StrokeColor: theme.curveColor(curveInd),
	}
}

// GetBoundsStyle returns style of upper and lower prediction bounds
func (theme *PlotTheme) GetBoundsStyle(curveInd int) chart.Style {
	return chart.Style{
		Show:        true,
		StrokeWidth: 0.5, //nolint
		StrokeColor: theme.curveColor(curveInd).WithAlpha(60), //nolint
	}
}

// GetTrendStyle returns style of trend profile curve
func (theme *PlotTheme) GetTrendStyle() chart.Style {
	trendColor := drawing.ColorFromHex(theme.trendColor)
	return chart.Style{
		Show:        true,
		StrokeWidth: 2, //nolint
		StrokeColor: trendColor,
		FillColor:   trendColor.WithAlpha(30), //nolint
		DotWidth:    3, //nolint
		DotColor:    trendColor,
	}
}

// GetLegendStyle returns legend style
func (theme *PlotTheme) GetLegendStyle() chart.Style {
	return chart.Style{
		Font:        theme.font,
		FontSize:    theme.fontSizeSecondary,
		FontColor:   chart.ColorAlternateGray,
		FillColor:   drawing.ColorTransparent,
		StrokeColor: drawing.ColorTransparent,
	}
}

// GetXAxisStyle returns x axis style
func (theme *PlotTheme) GetXAxisStyle() chart.Style {
	return chart.Style{
		Show:        true,
		Font:        theme.font,
		FontSize:    theme.fontSizeSecondary,
		FontColor:   chart.ColorAlternateGray,
		StrokeColor: drawing.ColorFromHex(theme.bgColor),
	}
}

// GetYAxisStyle returns y axis style
func (theme *PlotTheme) GetYAxisStyle() chart.Style {
	return chart.Style{
		Show:        true,
		Font:        theme.font,
		FontSize:    theme.fontSizePrimary,
		FontColor:   chart.ColorAlternateGray,
		StrokeColor: drawing.ColorFromHex(theme.bgColor),
	}
}
