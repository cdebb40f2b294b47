package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/capmon/capmon/api"
	"github.com/capmon/capmon/api/controller"
	"github.com/capmon/capmon/api/middleware"
)

func getDatasources(writer http.ResponseWriter, request *http.Request) {
	datasources := controller.GetDatasources(middleware.GetMetricSourceProvider(request))
	if err := render.Render(writer, request, datasources); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
