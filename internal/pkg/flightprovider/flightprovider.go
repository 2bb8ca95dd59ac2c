package flightprovider

import (
	"context"
	"time"

	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider/providerutils"
)

// config for flight data provider
type FlightProviderConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Operator string
	Limiter  providerutils.RateLimiter
}

// RouteProvider lists every route the upstream knows about.
type RouteProvider interface {
	FetchAllRoutes(ctx context.Context) ([]flight.Route, error)
}

// ScheduleProvider returns one route's timetable for a month, or nil when
// the upstream has none.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, origin, destination string, year, month int) (*flight.Schedule, error)
}
