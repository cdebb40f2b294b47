package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api"
	capmonmiddle "github.com/capmon/capmon/api/middleware"
	metricSource "github.com/capmon/capmon/metric_source"
	"github.com/capmon/capmon/templating"
)

const (
	defaultFrom        = "-7d"
	defaultUntil       = "now"
	defaultHorizonDays = 7

	defaultBacklogTimeout = 60 * time.Second
)

// NewHandler creates new api handler request uris based on github.com/go-chi/chi
func NewHandler(
	sourceProvider *metricSource.SourceProvider,
	forecaster capmon.Forecaster,
	log capmon.Logger,
	config *api.Config,
	metricsHandler http.Handler,
) (http.Handler, error) {
	dashboard, err := templating.NewDashboard()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(capmonmiddle.RequestLogger(log))
	router.Use(middleware.NoCache)
	router.Use(capmonmiddle.MetricSourceProvider(sourceProvider))
	router.Use(capmonmiddle.ForecasterContext(forecaster))

	router.NotFound(notFoundHandler)
	router.MethodNotAllowed(methodNotAllowedHandler)

	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	limit := throttle(config)
	router.With(limit).Get("/", getDashboard(dashboard))
	router.Route("/api", func(router chi.Router) {
		router.Use(render.SetContentType(render.ContentTypeJSON))
		router.Get("/datasource", getDatasources)
		router.Get("/health", getHealth)
		router.Route("/forecast", func(router chi.Router) {
			router.Use(limit)
			forecastRoutes(router)
		})
	})

	if config.EnableCORS {
		return cors.AllowAll().Handler(router), nil
	}
	return router, nil
}

func notFoundHandler(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("X-Content-Type-Options", "nosniff")
	render.Render(writer, request, api.ErrNotFound) //nolint
}

func methodNotAllowedHandler(writer http.ResponseWriter, request *http.Request) {
	render.Render(writer, request, api.ErrMethodNotAllowed) //nolint
}

// throttle limits fetch-forecast-render cycles to config.Workers,
// excess requests wait in backlog up to config.Timeout.
func throttle(config *api.Config) func(http.Handler) http.Handler {
	if config.Workers <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	backlogTimeout := config.Timeout
	if backlogTimeout <= 0 {
		backlogTimeout = defaultBacklogTimeout
	}
	return middleware.ThrottleBacklog(config.Workers, config.Backlog, backlogTimeout)
}
