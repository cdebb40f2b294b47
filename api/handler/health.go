package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/capmon/capmon/api"
	"github.com/capmon/capmon/api/controller"
	"github.com/capmon/capmon/api/middleware"
)

func getHealth(writer http.ResponseWriter, request *http.Request) {
	health := controller.GetHealth(request.Context(), middleware.GetMetricSourceProvider(request))
	if err := render.Render(writer, request, health); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
