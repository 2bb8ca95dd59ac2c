package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/ijalalfrz/flight-interconnections-service/internal/app/dto"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/logger"
)

type InterconnectionService struct {
	RouteProvider    flightprovider.RouteProvider
	ScheduleProvider flightprovider.ScheduleProvider
	FetchTimeout     time.Duration
	FetchConcurrency int
}

func NewInterconnectionService(routeProvider flightprovider.RouteProvider,
	scheduleProvider flightprovider.ScheduleProvider,
	fetchTimeout time.Duration, fetchConcurrency int) *InterconnectionService {
	return &InterconnectionService{
		RouteProvider:    routeProvider,
		ScheduleProvider: scheduleProvider,
		FetchTimeout:     fetchTimeout,
		FetchConcurrency: fetchConcurrency,
	}
}

// SearchInterconnections returns the direct and one-stop itineraries from
// departure to arrival within the request window, direct ones first.
// SearchInterconnections godoc
// @Summary      Search interconnections
// @Tags         Interconnections
// @Description  Search direct and one-stop flights between two airports
// @Param        departure          query  string  true  "Departure airport IATA code"
// @Param        arrival            query  string  true  "Arrival airport IATA code"
// @Param        departureDateTime  query  string  true  "Earliest departure, ISO-8601 local date-time"
// @Param        arrivalDateTime    query  string  true  "Latest arrival, ISO-8601 local date-time"
// @Success      200      {array}   dto.Interconnection
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /interconnections [get]
func (s *InterconnectionService) SearchInterconnections(
	ctx context.Context,
	req dto.InterconnectionRequest,
) ([]dto.Interconnection, error) {
	startTime := time.Now()
	window := req.Window()

	ctx = logger.WithAttrs(ctx,
		slog.String("departure", req.Departure),
		slog.String("arrival", req.Arrival))

	routes, err := s.RouteProvider.FetchAllRoutes(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to get routes from provider", slog.String("error", err.Error()))
		return []dto.Interconnection{}, nil
	}

	graph := flight.BuildGraph(routes, req.Departure, req.Arrival)
	correlator := flight.NewCorrelator(s.ScheduleProvider, s.FetchTimeout, s.FetchConcurrency)
	year, month := window.Start.Year(), int(window.Start.Month())

	directResults := correlator.Correlate(ctx, year, month, graph.Direct.Routes())

	direct, err := flight.MatchDirect(ctx, graph.Direct, window)
	if err != nil {
		return nil, ErrInvalidSchedule.WithCause(err)
	}

	graph.Prune()

	legRoutes := slices.Concat(graph.From.Routes(), graph.To.Routes())
	legResults := correlator.Correlate(ctx, year, month, legRoutes)

	oneStop, err := flight.MatchOneStop(ctx, graph.From, graph.To, window)
	if err != nil {
		return nil, ErrInvalidSchedule.WithCause(err)
	}

	itineraries := slices.Concat(direct, oneStop)

	slog.InfoContext(ctx, "interconnections searched",
		slog.Int("routes", len(routes)),
		slog.Int("schedules_requested", len(directResults)+len(legResults)),
		slog.Int("schedules_failed", countFailed(directResults)+countFailed(legResults)),
		slog.Int("direct", len(direct)),
		slog.Int("one_stop", len(oneStop)),
		slog.Int64("search_time_ms", time.Since(startTime).Milliseconds()))

	return dto.NewInterconnections(itineraries), nil
}

func countFailed(results []flight.FetchResult) int {
	failed := 0
	for _, res := range results {
		if !res.OK() {
			failed++
		}
	}

	return failed
}

