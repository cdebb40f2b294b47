package handler

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/capmon/capmon/api"
	"github.com/capmon/capmon/api/controller"
	"github.com/capmon/capmon/api/dto"
	"github.com/capmon/capmon/api/middleware"
	"github.com/capmon/capmon/plotting"
)

func forecastRoutes(router chi.Router) {
	router.Use(middleware.DateRange(defaultFrom, defaultUntil))
	router.Use(middleware.ForecastWindow(defaultHorizonDays))
	router.Get("/", getForecast)
	router.With(middleware.PlotParams(controller.ForecastPlot, plotting.DarkPlotTheme)).
		Get("/render", renderForecast)
}

func getForecast(writer http.ResponseWriter, request *http.Request) {
	report, errResponse := forecastReport(request)
	if errResponse != nil {
		render.Render(writer, request, errResponse) //nolint
		return
	}
	if err := render.Render(writer, request, report); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func renderForecast(writer http.ResponseWriter, request *http.Request) {
	report, errResponse := forecastReport(request)
	if errResponse != nil {
		render.Render(writer, request, errResponse) //nolint
		return
	}

	buff := bytes.NewBuffer(make([]byte, 0))
	errResponse = controller.RenderPlot(&report.ForecastReport, middleware.GetPlot(request), middleware.GetTheme(request), buff)
	if errResponse != nil {
		render.Render(writer, request, errResponse) //nolint
		return
	}

	writer.Header().Set("Content-Type", "image/png")
	buff.WriteTo(writer) //nolint
}

func forecastReport(request *http.Request) (*dto.ForecastReport, *api.ErrorResponse) {
	urlValues := request.URL.Query()
	forecastRequest, err := controller.ParseForecastRequest(
		urlValues.Get("datasource"),
		urlValues.Get("query"),
		middleware.GetFromStr(request),
		middleware.GetUntilStr(request),
		middleware.GetLookback(request),
		middleware.GetHorizon(request),
	)
	if err != nil {
		return nil, api.ErrorInvalidRequest(err)
	}

	return controller.GetForecastReport(
		request.Context(),
		middleware.GetMetricSourceProvider(request),
		middleware.GetForecaster(request),
		middleware.GetLoggerEntry(request),
		forecastRequest,
	)
}
