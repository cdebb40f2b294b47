package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api/handler"
	"github.com/capmon/capmon/cmd"
	"github.com/capmon/capmon/forecast"
	logging "github.com/capmon/capmon/logging/zerolog_adapter"
	"github.com/capmon/capmon/metrics"
)

const serviceName = "capmon"

var (
	printVersion           = flag.Bool("version", false, "Print version and exit")
	printDefaultConfigFlag = flag.Bool("default-config", false, "Print default config and exit")
)

// capmon bin version
var (
	CapmonVersion = "unknown"
	GitCommit     = "unknown"
	GoVersion     = "unknown"
)

const shutdownTimeout = 5 * time.Second

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println("capmon")
		fmt.Println("Version:", CapmonVersion)
		fmt.Println("Git Commit:", GitCommit)
		fmt.Println("Go Version:", GoVersion)
		os.Exit(0)
	}

	if *printDefaultConfigFlag {
		cmd.PrintConfig(cmd.DefaultSettings())
		os.Exit(0)
	}

	settings, err := cmd.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not read settings: %s\n", err.Error())
		os.Exit(1)
	}

	logger, err := logging.ConfigureLog(settings.Logger.LogFile, settings.Logger.LogLevel, serviceName, settings.Logger.LogPrettyFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not configure log: %s\n", err.Error())
		os.Exit(1)
	}

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Info().Msg(fmt.Sprintf(format, args...))
	})); err != nil {
		logger.Warning().
			Error(err).
			Msg("Failed to set GOMAXPROCS")
	}

	if err := run(settings, logger); err != nil {
		var configErr capmon.ConfigError
		if errors.As(err, &configErr) {
			logger.Error().
				Error(err).
				Msg("Invalid configuration")
			os.Exit(1)
		}
		logger.Fatal().
			Error(err).
			Msg("capmon stopped with error")
	}
}

func run(settings cmd.Settings, logger capmon.Logger) error {
	datasources, err := cmd.LoadDatasources(settings.ConfigPath)
	if err != nil {
		return err
	}
	logger.Info().
		String("config_path", settings.ConfigPath).
		Int("datasources", len(datasources)).
		Msg("Datasources loaded")

	registry := metrics.NewPrometheusRegistry()
	sourceProvider, err := cmd.InitMetricSources(datasources, settings.GetTimeout(), logger, metrics.NewDatasourceMetrics(registry))
	if err != nil {
		return err
	}
	forecaster := forecast.Instrument(forecast.NewForecaster(logger), metrics.NewForecastMetrics(registry))

	apiConfig := settings.GetAPISettings()
	httpHandler, err := handler.NewHandler(sourceProvider, forecaster, logger, apiConfig, metrics.Handler(registry))
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", apiConfig.Listen)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second, //nolint
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info().
			String("listen", apiConfig.Listen).
			String("version", CapmonVersion).
			Msg("capmon started")
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info().Msg("capmon shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("can't stop capmon correctly: %w", err)
		}
		logger.Info().
			String("version", CapmonVersion).
			Msg("capmon stopped")
		return nil
	})

	return group.Wait()
}
