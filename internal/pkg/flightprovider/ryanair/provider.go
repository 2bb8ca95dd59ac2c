package ryanair

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider/providerutils"
	jsoniter "github.com/json-iterator/go"
)

const (
	ProviderName = "ryanair"

	routesPath    = "/core/3/routes"
	schedulesPath = "/timetable/3/schedules/%s/%s/years/%d/months/%d"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Provider struct {
	Name       string
	BaseURL    string
	Operator   string
	HTTPClient *http.Client
	Limiter    providerutils.RateLimiter
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	return &Provider{
		Name:       ProviderName,
		BaseURL:    strings.TrimRight(config.BaseURL, "/"),
		Operator:   config.Operator,
		HTTPClient: &http.Client{Timeout: config.Timeout},
		Limiter:    config.Limiter,
	}
}

// FetchAllRoutes returns every route published by the routes API. When an
// operator is configured, routes run by other operators are left out.
func (p *Provider) FetchAllRoutes(ctx context.Context) ([]flight.Route, error) {
	var routes []Route

	found, err := p.get(ctx, "routes", routesPath, &routes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch routes: %w", err)
	}

	if !found {
		return nil, providerutils.ErrProviderInternalError.WithCause(fmt.Errorf("routes endpoint not found"))
	}

	return p.routesToDomain(routes), nil
}

// FetchSchedule returns the timetable of origin -> destination for the given
// month. A route unknown to the timetable API yields a nil schedule.
func (p *Provider) FetchSchedule(ctx context.Context,
	origin, destination string,
	year, month int,
) (*flight.Schedule, error) {
	var schedule Schedule

	path := fmt.Sprintf(schedulesPath, url.PathEscape(origin), url.PathEscape(destination), year, month)

	found, err := p.get(ctx, "schedules", path, &schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule %s-%s: %w", origin, destination, err)
	}

	if !found {
		return nil, nil
	}

	return scheduleToDomain(schedule, year), nil
}

func (p *Provider) get(ctx context.Context, endpoint, path string, out any) (bool, error) {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, fmt.Sprintf("%s:%s", p.Name, endpoint)); err != nil {
			return false, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", p.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, providerutils.ErrProviderInternalError.WithCause(
			fmt.Errorf("%s %s returned %s", p.Name, path, resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return true, nil
}

func (p *Provider) routesToDomain(routes []Route) []flight.Route {
	results := make([]flight.Route, 0, len(routes))
	for _, r := range routes {
		if p.Operator != "" && !strings.EqualFold(r.Operator, p.Operator) {
			continue
		}

		var connectingAirport string
		if r.ConnectingAirport != nil {
			connectingAirport = *r.ConnectingAirport
		}

		results = append(results, flight.Route{
			Origin:            r.AirportFrom,
			Destination:       r.AirportTo,
			ConnectingAirport: connectingAirport,
			Operator:          r.Operator,
		})
	}

	slog.Debug("routes fetched",
		slog.String("provider", p.Name),
		slog.Int("received", len(routes)),
		slog.Int("kept", len(results)))

	return results
}

func scheduleToDomain(schedule Schedule, year int) *flight.Schedule {
	days := make([]flight.DaySchedule, len(schedule.Days))
	for i, d := range schedule.Days {
		flights := make([]flight.FlightInstance, len(d.Flights))
		for j, f := range d.Flights {
			flights[j] = flight.FlightInstance{
				Number:        f.CarrierCode + f.Number,
				DepartureTime: f.DepartureTime,
				ArrivalTime:   f.ArrivalTime,
			}
		}

		days[i] = flight.DaySchedule{
			Day:     d.Day,
			Flights: flights,
		}
	}

	return &flight.Schedule{
		Year:  year,
		Month: schedule.Month,
		Days:  days,
	}
}
