package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/render"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api"
	"github.com/capmon/capmon/api/controller"
	"github.com/capmon/capmon/api/middleware"
	"github.com/capmon/capmon/plotting"
	"github.com/capmon/capmon/templating"
)

const dashboardTitle = "capmon"

var (
	dashboardDays   = []int{7, 14, 21, 30}
	dashboardThemes = []string{plotting.DarkPlotTheme, plotting.LightPlotTheme}
)

type dashboardForm struct {
	datasource string
	query      string
	lookback   int
	horizon    int
	theme      string
}

func getDashboard(dashboard *templating.Dashboard) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		datasources := middleware.GetMetricSourceProvider(request).GetDatasources()
		form, formErr := parseDashboardForm(request.URL.Query())
		if form.datasource == "" && len(datasources) > 0 {
			form.datasource = datasources[0].Name
		}

		page := newDashboardPage(datasources, form)
		status := http.StatusOK
		switch {
		case formErr != nil:
			page.Error = formErr.Error()
			status = http.StatusBadRequest
		case form.query != "":
			status = fillForecast(request, form, &page)
		}

		buff := bytes.NewBuffer(make([]byte, 0))
		if err := dashboard.Render(buff, page); err != nil {
			render.Render(writer, request, api.ErrorInternalServer(err)) //nolint
			return
		}

		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		writer.WriteHeader(status)
		buff.WriteTo(writer) //nolint
	}
}

func newDashboardPage(datasources []capmon.DatasourceConfig, form dashboardForm) templating.DashboardPage {
	page := templating.DashboardPage{
		Title:       dashboardTitle,
		Datasources: make([]templating.Option, 0, len(datasources)),
		Query:       form.query,
		Lookbacks:   templating.DaysOptions(dashboardDays, form.lookback),
		Horizons:    templating.DaysOptions(dashboardDays, form.horizon),
		Themes:      make([]templating.Option, 0, len(dashboardThemes)),
		Theme:       form.theme,
	}
	for _, datasource := range datasources {
		page.Datasources = append(page.Datasources, templating.Option{
			Value:    datasource.Name,
			Label:    datasource.Label(),
			Selected: datasource.Name == form.datasource,
		})
	}
	for _, theme := range dashboardThemes {
		page.Themes = append(page.Themes, templating.Option{Value: theme, Label: theme, Selected: theme == form.theme})
	}
	return page
}

// fillForecast runs fetch-forecast-render cycle, failures are shown as page alert
func fillForecast(request *http.Request, form dashboardForm, page *templating.DashboardPage) int {
	forecastRequest, err := controller.ParseForecastRequest(form.datasource, form.query, "", defaultUntil, form.lookback, form.horizon)
	if err != nil {
		page.Error = err.Error()
		return http.StatusBadRequest
	}

	report, errResponse := controller.GetForecastReport(
		request.Context(),
		middleware.GetMetricSourceProvider(request),
		middleware.GetForecaster(request),
		middleware.GetLoggerEntry(request),
		forecastRequest,
	)
	if errResponse != nil {
		page.Error = errResponse.ErrorText
		return errResponse.HTTPStatusCode
	}

	charts, errResponse := controller.RenderCharts(&report.ForecastReport, form.theme)
	if errResponse != nil {
		page.Error = errResponse.ErrorText
		return errResponse.HTTPStatusCode
	}
	for _, chart := range charts {
		page.Charts = append(page.Charts, templating.Chart{Title: chart.Title, PNG: chart.PNG})
	}
	page.Series = templating.SummarizeForecasts(report.Forecasts)
	return http.StatusOK
}

func parseDashboardForm(values url.Values) (dashboardForm, error) {
	form := dashboardForm{
		datasource: values.Get("datasource"),
		query:      values.Get("query"),
		lookback:   dashboardDays[0],
		horizon:    defaultHorizonDays,
		theme:      plotting.DarkPlotTheme,
	}

	var err error
	if form.lookback, err = parseFormDays(values.Get("lookback"), form.lookback); err != nil {
		return form, fmt.Errorf("lookback: %w", err)
	}
	if form.horizon, err = parseFormDays(values.Get("horizon"), form.horizon); err != nil {
		return form, fmt.Errorf("horizon: %w", err)
	}
	if theme := values.Get("theme"); theme != "" {
		if theme != plotting.DarkPlotTheme && theme != plotting.LightPlotTheme {
			return form, plotting.ErrUnknownTheme{Theme: theme}
		}
		form.theme = theme
	}
	return form, nil
}

func parseFormDays(value string, defaultDays int) (int, error) {
	if value == "" {
		return defaultDays, nil
	}
	days, err := strconv.Atoi(value)
	if err != nil || days <= 0 || days > capmon.MaxWindowDays {
		return defaultDays, fmt.Errorf("%q is not a number of days in range 1..%d", value, capmon.MaxWindowDays)
	}
	return days, nil
}
