package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api"
	"github.com/capmon/capmon/plotting"
	"github.com/moira-alert/go-chart"
)

// Plot kinds which can be rendered from forecast report
const (
	ForecastPlot = "forecast"
	WeeklyPlot   = "weekly"
	DailyPlot    = "daily"
)

// PlotKinds lists plot kinds in dashboard order
var PlotKinds = []string{ForecastPlot, WeeklyPlot, DailyPlot}

// ErrUnknownPlot is returned for plot kinds other than forecast, weekly and daily
type ErrUnknownPlot struct {
	Plot string
}

func (err ErrUnknownPlot) Error() string {
	return fmt.Sprintf("unknown plot %q, expected one of %v", err.Plot, PlotKinds)
}

// Chart is a rendered png image of one plot
type Chart struct {
	Kind  string
	Title string
	PNG   []byte
}

// RenderPlot writes png image of requested plot kind
func RenderPlot(report *capmon.ForecastReport, plot, theme string, writer io.Writer) *api.ErrorResponse {
	plotTemplate, err := plotting.GetPlotTemplate(theme)
	if err != nil {
		return plotErrorResponse(err)
	}

	renderable, err := buildRenderable(plotTemplate, report, plot)
	if err != nil {
		return plotErrorResponse(err)
	}

	if err = plotting.RenderPNG(renderable, writer); err != nil {
		return api.ErrorRender(err)
	}
	return nil
}

// RenderCharts renders every plot kind of the report
func RenderCharts(report *capmon.ForecastReport, theme string) ([]Chart, *api.ErrorResponse) {
	charts := make([]Chart, 0, len(PlotKinds))
	for _, plot := range PlotKinds {
		buff := bytes.NewBuffer(make([]byte, 0))
		if errResponse := RenderPlot(report, plot, theme, buff); errResponse != nil {
			return nil, errResponse
		}
		charts = append(charts, Chart{Kind: plot, Title: plotTitle(report, plot), PNG: buff.Bytes()})
	}
	return charts, nil
}

func buildRenderable(plotTemplate *plotting.Plot, report *capmon.ForecastReport, plot string) (chart.Chart, error) {
	title := plotTitle(report, plot)
	switch plot {
	case ForecastPlot:
		return plotTemplate.GetForecastRenderable(title, report.Forecasts)
	case WeeklyPlot:
		return plotTemplate.GetTrendRenderable(title, report.WeeklyTrend)
	case DailyPlot:
		return plotTemplate.GetTrendRenderable(title, report.DailyTrend)
	default:
		return chart.Chart{}, ErrUnknownPlot{Plot: plot}
	}
}

func plotTitle(report *capmon.ForecastReport, plot string) string {
	switch plot {
	case WeeklyPlot:
		return "Weekly trend"
	case DailyPlot:
		return "Daily trend"
	default:
		return report.Query
	}
}

func plotErrorResponse(err error) *api.ErrorResponse {
	var (
		unknownPlot  ErrUnknownPlot
		unknownTheme plotting.ErrUnknownTheme
		noPoints     plotting.ErrNoPointsToRender
	)
	switch {
	case errors.As(err, &unknownPlot), errors.As(err, &unknownTheme):
		return api.ErrorInvalidRequest(err)
	case errors.As(err, &noPoints):
		return api.ErrorRender(err)
	default:
		return api.ErrorInternalServer(err)
	}
}
