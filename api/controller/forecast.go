package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api"
	"github.com/capmon/capmon/api/dto"
	"github.com/capmon/capmon/forecast"
	metricSource "github.com/capmon/capmon/metric_source"
	"github.com/go-graphite/carbonapi/date"
)

const day = 24 * time.Hour

// ForecastRequest is a resolved request of one fetch-forecast cycle
type ForecastRequest struct {
	Datasource string
	Query      string
	From       int64
	Until      int64
	Lookback   int
	Horizon    int
}

// HorizonDuration returns forecast horizon as duration
func (request ForecastRequest) HorizonDuration() time.Duration {
	return time.Duration(request.Horizon) * day
}

// ParseForecastRequest resolves graphite-like from and until values.
// Lookback days, when set, replace from and are counted back from until
func ParseForecastRequest(datasource, query, fromStr, untilStr string, lookback, horizon int) (ForecastRequest, error) {
	request := ForecastRequest{
		Datasource: strings.TrimSpace(datasource),
		Query:      strings.TrimSpace(query),
		Lookback:   lookback,
		Horizon:    horizon,
	}
	if request.Datasource == "" {
		return request, errors.New("datasource must be set")
	}
	if request.Query == "" {
		return request, errors.New("query must be set")
	}
	if horizon <= 0 || horizon > capmon.MaxWindowDays {
		return request, fmt.Errorf("horizon must be in range 1..%d days, got %d", capmon.MaxWindowDays, horizon)
	}
	if lookback < 0 || lookback > capmon.MaxWindowDays {
		return request, fmt.Errorf("lookback must be in range 0..%d days, got %d", capmon.MaxWindowDays, lookback)
	}

	request.Until = date.DateParamToEpoch(untilStr, "UTC", 0, time.UTC)
	if request.Until == 0 {
		return request, fmt.Errorf("can not parse until: %s", untilStr)
	}

	if lookback > 0 {
		request.From = request.Until - int64((time.Duration(lookback) * day).Seconds())
	} else {
		request.From = date.DateParamToEpoch(fromStr, "UTC", 0, time.UTC)
		if request.From == 0 {
			return request, fmt.Errorf("can not parse from: %s", fromStr)
		}
	}

	if request.From >= request.Until {
		return request, fmt.Errorf("from (%d) must be earlier than until (%d)", request.From, request.Until)
	}
	return request, nil
}

// GetForecastReport fetches series from requested datasource and forecasts each of them
func GetForecastReport(
	ctx context.Context,
	sourceProvider *metricSource.SourceProvider,
	forecaster capmon.Forecaster,
	logger capmon.Logger,
	request ForecastRequest,
) (*dto.ForecastReport, *api.ErrorResponse) {
	source, err := sourceProvider.GetMetricSource(request.Datasource)
	if err != nil {
		return nil, api.ErrorNotFound(err.Error())
	}

	logger.String("datasource", request.Datasource).
		String("query", request.Query).
		Int("lookback", request.Lookback).
		Int("horizon", request.Horizon)

	series, err := source.Fetch(ctx, request.Query, capmon.TimeRange{From: request.From, Until: request.Until})
	if err != nil {
		return nil, api.ErrorFor(err)
	}
	logger.Debug().
		Int("series", len(series)).
		Msg("Series fetched")

	report, err := forecast.BuildReport(forecaster, logger, request.Datasource, request.Query, series, request.HorizonDuration())
	if err != nil {
		return nil, api.ErrorFor(err)
	}

	return &dto.ForecastReport{
		ForecastReport: *report,
		From:           request.From,
		Until:          request.Until,
		Horizon:        request.Horizon,
	}, nil
}
