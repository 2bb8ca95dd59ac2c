//go:build unit

package flight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func scheduleOn(day int, flights ...FlightInstance) *Schedule {
	return &Schedule{
		Year:  2024,
		Month: 3,
		Days:  []DaySchedule{{Day: day, Flights: flights}},
	}
}

func TestMatchDirect(t *testing.T) {
	matchRequest := func(routes []*Route, window Window, want []Itinerary, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := MatchDirect(context.Background(), NewRouteSet(routes...), window)
			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("MatchDirect() error = %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("MatchDirect() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	window := Window{Start: at(15, 7, 0), End: at(15, 10, 0)}
	dubStn := func(s *Schedule) *Route {
		return &Route{Origin: "DUB", Destination: "STN", Schedule: s}
	}

	t.Run("single_flight_in_window", matchRequest(
		[]*Route{dubStn(scheduleOn(15, FlightInstance{Number: "FR202", DepartureTime: "08:00", ArrivalTime: "09:30"}))},
		window,
		[]Itinerary{{
			Stops: 0,
			Legs: []Leg{{
				DepartureAirport:  "DUB",
				ArrivalAirport:    "STN",
				DepartureDateTime: at(15, 8, 0),
				ArrivalDateTime:   at(15, 9, 30),
			}},
		}},
		nil,
	))

	t.Run("window_bounds_inclusive", matchRequest(
		[]*Route{dubStn(scheduleOn(15, FlightInstance{DepartureTime: "07:00", ArrivalTime: "10:00"}))},
		window,
		[]Itinerary{NewItinerary(Leg{
			DepartureAirport:  "DUB",
			ArrivalAirport:    "STN",
			DepartureDateTime: at(15, 7, 0),
			ArrivalDateTime:   at(15, 10, 0),
		})},
		nil,
	))

	t.Run("departs_too_early", matchRequest(
		[]*Route{dubStn(scheduleOn(15, FlightInstance{DepartureTime: "06:59", ArrivalTime: "08:30"}))},
		window, nil, nil,
	))

	t.Run("arrives_too_late", matchRequest(
		[]*Route{dubStn(scheduleOn(15, FlightInstance{DepartureTime: "08:30", ArrivalTime: "10:01"}))},
		window, nil, nil,
	))

	t.Run("other_day", matchRequest(
		[]*Route{dubStn(scheduleOn(16, FlightInstance{DepartureTime: "08:00", ArrivalTime: "09:30"}))},
		window, nil, nil,
	))

	t.Run("no_schedule", matchRequest([]*Route{dubStn(nil)}, window, nil, nil))

	// overnight arrivals stay on the departure day, so the arrival precedes the departure
	t.Run("overnight_not_rolled_over", matchRequest(
		[]*Route{dubStn(scheduleOn(15, FlightInstance{DepartureTime: "23:30", ArrivalTime: "01:00"}))},
		Window{Start: at(15, 20, 0), End: at(16, 6, 0)},
		[]Itinerary{NewItinerary(Leg{
			DepartureAirport:  "DUB",
			ArrivalAirport:    "STN",
			DepartureDateTime: at(15, 23, 30),
			ArrivalDateTime:   at(15, 1, 0),
		})},
		nil,
	))

	t.Run("malformed_time", matchRequest(
		[]*Route{dubStn(scheduleOn(15, FlightInstance{DepartureTime: "8am", ArrivalTime: "09:30"}))},
		window, nil, ErrMalformedSchedule,
	))
}

func TestMatchOneStop(t *testing.T) {
	matchRequest := func(from, to []*Route, window Window, want []Itinerary, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := MatchOneStop(context.Background(), NewRouteSet(from...), NewRouteSet(to...), window)
			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("MatchOneStop() error = %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("MatchOneStop() mismatch (-want +got):\n%s", diff)
			}

			for _, it := range got {
				if it.Stops != len(it.Legs)-1 || len(it.Legs) != 2 {
					t.Fatalf("unexpected itinerary shape %+v", it)
				}
				if it.Legs[0].ArrivalAirport != it.Legs[1].DepartureAirport {
					t.Fatalf("legs are not contiguous: %+v", it.Legs)
				}
			}
		}
	}

	window := Window{Start: at(15, 7, 0), End: at(15, 13, 0)}
	first := func() *Route {
		return &Route{Origin: "DUB", Destination: "STN",
			Schedule: scheduleOn(15, FlightInstance{DepartureTime: "08:00", ArrivalTime: "09:30"})}
	}
	second := func(departure, arrival string) *Route {
		return &Route{Origin: "STN", Destination: "BCN",
			Schedule: scheduleOn(15, FlightInstance{DepartureTime: departure, ArrivalTime: arrival})}
	}
	itinerary := func(secondDeparture, secondArrival time.Time) Itinerary {
		return NewItinerary(
			Leg{DepartureAirport: "DUB", ArrivalAirport: "STN", DepartureDateTime: at(15, 8, 0), ArrivalDateTime: at(15, 9, 30)},
			Leg{DepartureAirport: "STN", ArrivalAirport: "BCN", DepartureDateTime: secondDeparture, ArrivalDateTime: secondArrival},
		)
	}

	t.Run("connection_too_short", matchRequest(
		[]*Route{first()}, []*Route{second("11:00", "12:30")}, window, nil, nil,
	))

	t.Run("connection_one_minute_short", matchRequest(
		[]*Route{first()}, []*Route{second("11:29", "12:45")}, window, nil, nil,
	))

	t.Run("connection_exactly_two_hours", matchRequest(
		[]*Route{first()}, []*Route{second("11:30", "12:45")}, window,
		[]Itinerary{itinerary(at(15, 11, 30), at(15, 12, 45))}, nil,
	))

	t.Run("second_leg_arrives_too_late", matchRequest(
		[]*Route{first()}, []*Route{second("11:45", "13:01")}, window, nil, nil,
	))

	t.Run("first_leg_departs_too_early", matchRequest(
		[]*Route{first()}, []*Route{second("11:45", "12:45")},
		Window{Start: at(15, 8, 1), End: at(15, 13, 0)}, nil, nil,
	))

	t.Run("second_leg_next_day", matchRequest(
		[]*Route{first()},
		[]*Route{{Origin: "STN", Destination: "BCN",
			Schedule: scheduleOn(16, FlightInstance{DepartureTime: "07:00", ArrivalTime: "09:00"})}},
		Window{Start: at(15, 7, 0), End: at(16, 10, 0)},
		[]Itinerary{itinerary(at(16, 7, 0), at(16, 9, 0))}, nil,
	))

	t.Run("second_leg_without_schedule", matchRequest(
		[]*Route{first()}, []*Route{{Origin: "STN", Destination: "BCN"}}, window, nil, nil,
	))

	t.Run("no_connecting_route", matchRequest(
		[]*Route{first()},
		[]*Route{{Origin: "MAD", Destination: "BCN",
			Schedule: scheduleOn(15, FlightInstance{DepartureTime: "11:30", ArrivalTime: "12:30"})}},
		window, nil, nil,
	))

	t.Run("discovery_order", matchRequest(
		[]*Route{first()},
		[]*Route{{Origin: "STN", Destination: "BCN", Schedule: &Schedule{
			Year:  2024,
			Month: 3,
			Days: []DaySchedule{{Day: 15, Flights: []FlightInstance{
				{DepartureTime: "12:00", ArrivalTime: "12:50"},
				{DepartureTime: "11:30", ArrivalTime: "12:30"},
				{DepartureTime: "10:00", ArrivalTime: "11:00"},
			}}},
		}}},
		window,
		[]Itinerary{
			itinerary(at(15, 12, 0), at(15, 12, 50)),
			itinerary(at(15, 11, 30), at(15, 12, 30)),
		}, nil,
	))

	t.Run("malformed_second_leg", matchRequest(
		[]*Route{first()}, []*Route{second("11:30", "x")}, window, nil, ErrMalformedSchedule,
	))
}
