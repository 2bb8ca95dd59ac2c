//go:build unit

package ryanair

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider/providerutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routesBody = `[
	{"airportFrom":"DUB","airportTo":"STN","connectingAirport":null,"newRoute":false,"seasonalRoute":false,"operator":"RYANAIR","group":"CITY"},
	{"airportFrom":"DUB","airportTo":"BCN","connectingAirport":"STN","newRoute":false,"seasonalRoute":false,"operator":"RYANAIR","group":"ETHNIC"},
	{"airportFrom":"STN","airportTo":"BCN","newRoute":true,"seasonalRoute":true,"operator":"AIR_EUROPA","group":"LEISURE"}
]`

const scheduleBody = `{"month":3,"days":[
	{"day":15,"flights":[{"carrierCode":"FR","number":"202","departureTime":"08:00","arrivalTime":"09:30"}]},
	{"day":16,"flights":[]}
]}`

func newTestProvider(t *testing.T, operator string, handler http.HandlerFunc) *Provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewProvider(flightprovider.FlightProviderConfig{
		BaseURL:  server.URL + "/",
		Timeout:  time.Second,
		Operator: operator,
		Limiter:  providerutils.NewLocalLimiter(0),
	})
}

func TestProvider_FetchAllRoutes(t *testing.T) {
	fetchRequest := func(operator string, status int, body string, want []flight.Route, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			p := newTestProvider(t, operator, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/core/3/routes", r.URL.Path)
				w.WriteHeader(status)
				_, _ = w.Write([]byte(body))
			})

			got, err := p.FetchAllRoutes(context.Background())
			if (err != nil) != wantErr {
				t.Fatalf("FetchAllRoutes() error = %v, wantErr %v", err, wantErr)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("FetchAllRoutes() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	all := []flight.Route{
		{Origin: "DUB", Destination: "STN", Operator: "RYANAIR"},
		{Origin: "DUB", Destination: "BCN", ConnectingAirport: "STN", Operator: "RYANAIR"},
		{Origin: "STN", Destination: "BCN", Operator: "AIR_EUROPA"},
	}

	t.Run("all_operators", fetchRequest("", http.StatusOK, routesBody, all, false))
	t.Run("operator_filter", fetchRequest("ryanair", http.StatusOK, routesBody, all[:2], false))
	t.Run("upstream_error", fetchRequest("", http.StatusInternalServerError, "oops", nil, true))
	t.Run("not_found", fetchRequest("", http.StatusNotFound, "", nil, true))
	t.Run("malformed_body", fetchRequest("", http.StatusOK, "{", nil, true))
}

func TestProvider_FetchSchedule(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/timetable/3/schedules/DUB/STN/years/2024/months/3", r.URL.Path)
			_, _ = w.Write([]byte(scheduleBody))
		})

		got, err := p.FetchSchedule(context.Background(), "DUB", "STN", 2024, 3)
		require.NoError(t, err)

		want := &flight.Schedule{
			Year:  2024,
			Month: 3,
			Days: []flight.DaySchedule{
				{Day: 15, Flights: []flight.FlightInstance{{Number: "FR202", DepartureTime: "08:00", ArrivalTime: "09:30"}}},
				{Day: 16, Flights: []flight.FlightInstance{}},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("FetchSchedule() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not_found_is_absent", func(t *testing.T) {
		p := newTestProvider(t, "", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		got, err := p.FetchSchedule(context.Background(), "DUB", "STN", 2024, 3)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("upstream_error", func(t *testing.T) {
		p := newTestProvider(t, "", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := p.FetchSchedule(context.Background(), "DUB", "STN", 2024, 3)
		assert.ErrorIs(t, err, providerutils.ErrProviderInternalError)
	})

	t.Run("context_deadline", func(t *testing.T) {
		p := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := p.FetchSchedule(ctx, "DUB", "STN", 2024, 3)
		assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	})
}
