package plotting

import (
	"fmt"

	"github.com/capmon/capmon/plotting/themes"
	"github.com/golang/freetype/truetype"
	"github.com/moira-alert/go-chart"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// DarkPlotTheme is the default theme
	DarkPlotTheme  = "dark"
	LightPlotTheme = "light"
)

// PlotTheme provides styles of every chart element
type PlotTheme interface {
	GetTitleStyle() chart.Style
	GetGridStyle() chart.Style
	GetCanvasStyle() chart.Style
	GetBackgroundStyle(maxMarkLen int) chart.Style
	GetSerieStyles(curveInd int) (curveStyle, pointStyle chart.Style)
	GetPredictionStyle(curveInd int) chart.Style
	GetBoundsStyle(curveInd int) chart.Style
	GetTrendStyle() chart.Style
	GetLegendStyle() chart.Style
	GetXAxisStyle() chart.Style
	GetYAxisStyle() chart.Style
}

// ErrUnknownTheme is returned for theme names other than dark and light
type ErrUnknownTheme struct {
	Theme string
}

func (err ErrUnknownTheme) Error() string {
	return fmt.Sprintf("unknown plot theme %q", err.Theme)
}

// getPlotTheme returns plot theme, empty name means dark theme.
func getPlotTheme(plotTheme string) (PlotTheme, error) {
	themeFont, err := getDefaultFont()
	if err != nil {
		return nil, err
	}
	switch plotTheme {
	case DarkPlotTheme, "":
		return themes.NewDarkTheme(themeFont), nil
	case LightPlotTheme:
		return themes.NewLightTheme(themeFont), nil
	default:
		return nil, ErrUnknownTheme{Theme: plotTheme}
	}
}

// getDefaultFont returns default font.
func getDefaultFont() (*truetype.Font, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return ttf, nil
}
